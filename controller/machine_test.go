package controller

import (
	"math/rand"
	"testing"
	"time"

	"github.com/battlesnakeio/holosnake/input"
	"github.com/battlesnakeio/holosnake/layout"
	"github.com/battlesnakeio/holosnake/menu"
	"github.com/battlesnakeio/holosnake/rules"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

type eventLog struct{ events []rules.Event }

func (l *eventLog) Notify(e rules.Event) { l.events = append(l.events, e) }

func newTestMachine() (*Machine, *eventLog) {
	events := &eventLog{}
	m := NewMachine(Config{
		FoodSize: layout.Size{W: 40, H: 40},
		WallSize: layout.Size{W: 80, H: 80},
		Rand:     rand.New(rand.NewSource(11)),
		Scores:   NewScoreKeeper(InMemStore()),
		Notifier: events,
	})
	return m, events
}

func pointer(x, y int) *layout.Point { return &layout.Point{X: x, Y: y} }

func TestMachineStartsInMenu(t *testing.T) {
	m, _ := newTestMachine()
	v := m.View()
	require.Equal(t, ModeMenu, v.Mode)
	require.Nil(t, v.Game)
	require.False(t, v.Paused)
	require.False(t, v.Quit)
	require.Equal(t, menu.ScreenMain, v.Menu.Screen)
}

func TestMachineMenuIgnoresPinchWithoutPointer(t *testing.T) {
	m, events := newTestMachine()
	v := m.Update(input.Frame{Pinch: true}, at(0))
	require.Equal(t, ModeMenu, v.Mode)
	require.Empty(t, events.events)
}

func TestMachinePlay(t *testing.T) {
	m, events := newTestMachine()

	v := m.Update(input.Frame{Pointer: pointer(640, 250), Pinch: true}, at(0))
	require.Equal(t, ModePlaying, v.Mode)
	require.NotNil(t, v.Game)
	require.Equal(t, 1, v.Game.Level)
	require.Equal(t, []rules.Event{rules.EventItemSelected, rules.EventGameStarted}, events.events)
	require.NotNil(t, m.Simulation())

	v = m.Update(input.Frame{Pointer: pointer(640, 360)}, at(33))
	require.Equal(t, layout.Point{X: 640, Y: 360}, v.Game.Head)
	require.Len(t, v.Game.Trail, 1)
}

func TestMachineLevelSelectionStarts(t *testing.T) {
	m, _ := newTestMachine()
	m.Update(input.Frame{Pointer: pointer(640, 350), Pinch: true}, at(0))
	require.Equal(t, menu.ScreenLevels, m.Menu().Screen())

	v := m.Update(input.Frame{Pointer: pointer(640, 400), Pinch: true}, at(600))
	require.Equal(t, ModePlaying, v.Mode)
	require.Equal(t, 4, v.Game.Level)
	require.Len(t, v.Game.Walls, 8)
}

func TestMachinePausedWithoutHand(t *testing.T) {
	m, _ := newTestMachine()
	m.Update(input.Frame{Pointer: pointer(640, 250), Pinch: true}, at(0))
	before := m.Update(input.Frame{Pointer: pointer(640, 360)}, at(33))

	v := m.Update(input.Frame{}, at(66))
	require.True(t, v.Paused)
	require.Equal(t, ModePlaying, v.Mode)
	require.Equal(t, before.Game.Trail, v.Game.Trail)

	v = m.Update(input.Frame{Pointer: pointer(640, 360)}, at(99))
	require.False(t, v.Paused)
}

func TestMachineFistReturnsToMenu(t *testing.T) {
	m, events := newTestMachine()
	m.Update(input.Frame{Pointer: pointer(640, 250), Pinch: true}, at(0))
	events.events = nil

	v := m.Update(input.Frame{Pointer: pointer(640, 360), Fist: true}, at(1500))
	require.Equal(t, ModeMenu, v.Mode)
	require.Nil(t, v.Game)
	require.Nil(t, m.Simulation())
	require.Equal(t, []rules.Event{rules.EventItemSelected, rules.EventReturnedToMenu}, events.events)

	// A stale fist in the menu does nothing.
	v = m.Update(input.Frame{Pointer: pointer(640, 250), Fist: true}, at(3000))
	require.Equal(t, ModeMenu, v.Mode)
}

func TestMachineFistIgnoredWhilePaused(t *testing.T) {
	m, _ := newTestMachine()
	m.Update(input.Frame{Pointer: pointer(640, 250), Pinch: true}, at(0))
	v := m.Update(input.Frame{Fist: true}, at(100))
	require.Equal(t, ModePlaying, v.Mode)
}

func TestMachineQuit(t *testing.T) {
	m, _ := newTestMachine()
	v := m.Update(input.Frame{Pointer: pointer(640, 600), Pinch: true}, at(0))
	require.True(t, v.Quit)
	require.Equal(t, ModeMenu, v.Mode)
}
