// Package controller orchestrates a session: it routes each input frame to
// the menu or to the running simulation, and owns the high score stores.
package controller

import (
	"time"

	"github.com/battlesnakeio/holosnake/input"
	"github.com/battlesnakeio/holosnake/layout"
	"github.com/battlesnakeio/holosnake/menu"
	"github.com/battlesnakeio/holosnake/rules"
	log "github.com/sirupsen/logrus"
)

// Mode is the top level state.
type Mode string

const (
	ModeMenu    Mode = "menu"
	ModePlaying Mode = "playing"
)

// Config is what the machine passes on to each new simulation.
type Config struct {
	FoodSize layout.Size
	WallSize layout.Size
	// Rand is shared by every simulation. Nil seeds a fresh source per game.
	Rand     layout.Rand
	Scores   rules.ScoreKeeper
	Notifier rules.Notifier
}

// View is everything a renderer needs for one frame.
type View struct {
	Mode   Mode            `json:"mode"`
	Menu   menu.View       `json:"menu"`
	Game   *rules.Snapshot `json:"game,omitempty"`
	Paused bool            `json:"paused"`
	Quit   bool            `json:"quit"`
}

// Machine is the two state {Menu, Playing} orchestrator.
type Machine struct {
	cfg    Config
	menu   *menu.Controller
	sim    *rules.Simulation
	mode   Mode
	last   *rules.Snapshot
	paused bool
	quit   bool
}

// NewMachine returns a machine showing the main menu.
func NewMachine(cfg Config) *Machine {
	if cfg.Notifier == nil {
		cfg.Notifier = rules.Discard
	}
	return &Machine{
		cfg:  cfg,
		menu: menu.New(cfg.Notifier),
		mode: ModeMenu,
	}
}

// Menu exposes the menu, which also carries the audio flags.
func (m *Machine) Menu() *menu.Controller { return m.menu }

// Mode returns the current top level state.
func (m *Machine) Mode() Mode { return m.mode }

// Simulation returns the running simulation, nil in the menu.
func (m *Machine) Simulation() *rules.Simulation { return m.sim }

// Update routes one frame of input and returns the resulting view.
func (m *Machine) Update(frame input.Frame, now time.Time) View {
	switch m.mode {
	case ModeMenu:
		m.updateMenu(frame, now)
	case ModePlaying:
		m.updateGame(frame, now)
	}
	return m.View()
}

func (m *Machine) updateMenu(frame input.Frame, now time.Time) {
	if frame.Pointer == nil {
		return
	}
	m.menu.UpdateSelection(frame.Pointer.Y)
	if !frame.Pinch {
		return
	}
	sel := m.menu.HandleSelection()
	switch sel.Intent {
	case menu.IntentStartGame:
		m.start(sel.Level, now)
	case menu.IntentQuit:
		log.Info("quit selected")
		m.quit = true
	}
}

func (m *Machine) updateGame(frame input.Frame, now time.Time) {
	if frame.Pointer == nil {
		m.paused = true
		return
	}
	m.paused = false
	if frame.Fist {
		m.exit(now)
		return
	}
	snap := m.sim.Update(*frame.Pointer, now)
	m.last = &snap
}

func (m *Machine) start(level int, now time.Time) {
	m.sim = rules.NewSimulation(rules.Config{
		Level:    level,
		FoodSize: m.cfg.FoodSize,
		WallSize: m.cfg.WallSize,
		Rand:     m.cfg.Rand,
		Scores:   m.cfg.Scores,
		Notifier: m.cfg.Notifier,
	}, now)
	snap := m.sim.Snapshot()
	m.last = &snap
	m.mode = ModePlaying
	m.paused = false
	m.cfg.Notifier.Notify(rules.EventGameStarted)
}

func (m *Machine) exit(now time.Time) {
	m.sim.Finish(now)
	log.WithField("SessionID", m.sim.ID).Info("returned to menu")
	m.sim = nil
	m.last = nil
	m.mode = ModeMenu
	m.cfg.Notifier.Notify(rules.EventItemSelected)
	m.cfg.Notifier.Notify(rules.EventReturnedToMenu)
}

// View returns the state as of the last Update.
func (m *Machine) View() View {
	v := View{
		Mode:   m.mode,
		Menu:   m.menu.View(),
		Paused: m.mode == ModePlaying && m.paused,
		Quit:   m.quit,
	}
	if m.last != nil {
		snap := *m.last
		v.Game = &snap
	}
	return v
}
