package commands

import (
	"testing"

	"github.com/battlesnakeio/holosnake/layout"
	"github.com/battlesnakeio/holosnake/menu"
	"github.com/battlesnakeio/holosnake/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func TestViewportRoundTrip(t *testing.T) {
	vp := viewport{w: 128, h: 38}

	p := vp.toArena(0, 1)
	require.Equal(t, layout.Point{X: 5, Y: 10}, p)
	x, y := vp.toCell(p)
	require.Equal(t, 0, x)
	require.Equal(t, 1, y)

	p = vp.toArena(127, 36)
	x, y = vp.toCell(p)
	require.Equal(t, 127, x)
	require.Equal(t, 36, y)

	// Status and help rows clamp onto the board.
	require.Equal(t, vp.toArena(10, 1), vp.toArena(10, 0))
	require.Equal(t, vp.toArena(10, 36), vp.toArena(10, 37))
}

func TestViewportTinyTerminal(t *testing.T) {
	vp := viewport{}
	p := vp.toArena(0, 0)
	require.Equal(t, layout.Point{X: layout.ArenaWidth / 2, Y: layout.ArenaHeight / 2}, p)
	x, y := vp.toCell(layout.Point{X: 1279, Y: 719})
	require.Equal(t, 0, x)
	require.Equal(t, 1, y)
}

func TestTerminalInputNoHandUntilMouse(t *testing.T) {
	ti := &terminalInput{}
	f, err := ti.frame()
	require.NoError(t, err)
	require.Nil(t, f.Pointer)

	ti.apply(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, viewport{w: 128, h: 38})
	f, err = ti.frame()
	require.NoError(t, err)
	require.False(t, f.Pinch, "gestures need a visible hand")
}

func TestTerminalInputMouse(t *testing.T) {
	vp := viewport{w: 128, h: 38}
	ti := &terminalInput{}

	ti.apply(termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseLeft, MouseX: 64, MouseY: 10}, vp)
	f, err := ti.frame()
	require.NoError(t, err)
	require.NotNil(t, f.Pointer)
	require.Equal(t, vp.toArena(64, 10), *f.Pointer)
	require.True(t, f.Pinch)

	// Gestures are one shot, the pointer persists.
	f, err = ti.frame()
	require.NoError(t, err)
	require.False(t, f.Pinch)
	require.NotNil(t, f.Pointer)

	// Dragging moves without selecting.
	ti.apply(termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseLeft, Mod: termbox.ModMotion, MouseX: 70, MouseY: 12}, vp)
	f, _ = ti.frame()
	require.False(t, f.Pinch)
	require.Equal(t, vp.toArena(70, 12), *f.Pointer)

	ti.apply(termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseRight, MouseX: 70, MouseY: 12}, vp)
	f, _ = ti.frame()
	require.True(t, f.Fist)
}

func TestTerminalInputKeys(t *testing.T) {
	vp := viewport{w: 128, h: 38}
	ti := &terminalInput{}

	ti.apply(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, vp)
	f, _ := ti.frame()
	require.Equal(t, layout.Point{X: 640, Y: 320}, *f.Pointer)

	ti.apply(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, vp)
	f, _ = ti.frame()
	require.True(t, f.Fist)

	ti.apply(termbox.Event{Type: termbox.EventKey, Ch: 'h'}, vp)
	ti.apply(termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, vp)
	f, _ = ti.frame()
	require.Nil(t, f.Pointer)
	require.False(t, f.Pinch)

	ti.apply(termbox.Event{Type: termbox.EventKey, Ch: 'q'}, vp)
	_, err := ti.frame()
	require.Equal(t, worker.ErrStopped, err)
}

func TestMenuRowsLandOnBuckets(t *testing.T) {
	require.Equal(t, 300, menuRow(menu.ScreenMain, 0))
	require.Equal(t, 590, menuRow(menu.ScreenLevels, 5))
}
