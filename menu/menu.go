// Package menu maps a continuous pointer height and a discrete select gesture
// onto the main, settings and level screens.
package menu

import (
	"fmt"

	"github.com/battlesnakeio/holosnake/rules"
	log "github.com/sirupsen/logrus"
)

// Screen is one of the menu pages.
type Screen string

const (
	ScreenMain     Screen = "main"
	ScreenSettings Screen = "settings"
	ScreenLevels   Screen = "levels"
)

// LevelCount is the number of levels offered on the levels screen.
const LevelCount = 6

// Main screen entries.
const (
	OptionPlay     = "Play"
	OptionLevels   = "Levels"
	OptionSettings = "Settings"
	OptionQuit     = "Quit"
	OptionBack     = "Back"
)

var mainOptions = []string{OptionPlay, OptionLevels, OptionSettings, OptionQuit}

// bucket describes how pointer heights map to entries on a screen.
type bucket struct {
	offset int
	height int
}

var buckets = map[Screen]bucket{
	ScreenMain:     {offset: 250, height: 100},
	ScreenSettings: {offset: 250, height: 100},
	ScreenLevels:   {offset: 150, height: 80},
}

// Intent is what a selection asks the orchestrator to do.
type Intent int

const (
	// IntentNone keeps the menu open.
	IntentNone Intent = iota
	// IntentStartGame starts a game at Selection.Level.
	IntentStartGame
	// IntentQuit ends the process.
	IntentQuit
)

// Selection is the result of HandleSelection.
type Selection struct {
	Intent Intent
	Level  int
}

// View is a snapshot of the menu for renderers.
type View struct {
	Screen                 Screen   `json:"screen"`
	Options                []string `json:"options"`
	SelectedIndex          int      `json:"selectedIndex"`
	BackgroundMusicEnabled bool     `json:"backgroundMusicEnabled"`
	SoundEffectsEnabled    bool     `json:"soundEffectsEnabled"`
	PendingLevel           int      `json:"pendingLevel"`
}

// Controller is the menu state machine. It lives for the whole process and
// owns the audio flags.
type Controller struct {
	screen       Screen
	selected     int
	music        bool
	sfx          bool
	pendingLevel int
	notifier     rules.Notifier
}

// New returns a controller on the main screen with both audio flags on.
func New(notifier rules.Notifier) *Controller {
	if notifier == nil {
		notifier = rules.Discard
	}
	return &Controller{
		screen:       ScreenMain,
		music:        true,
		sfx:          true,
		pendingLevel: 1,
		notifier:     notifier,
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// Options returns the entries of the current screen.
func (c *Controller) Options() []string {
	switch c.screen {
	case ScreenSettings:
		return []string{
			fmt.Sprintf("Background Music: %s", onOff(c.music)),
			fmt.Sprintf("Game Sound Effects: %s", onOff(c.sfx)),
			OptionBack,
		}
	case ScreenLevels:
		levels := make([]string, LevelCount)
		for i := range levels {
			levels[i] = fmt.Sprintf("Level %d", i+1)
		}
		return levels
	default:
		return append([]string{}, mainOptions...)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// UpdateSelection highlights the entry under pointerY, clamped to the
// entries of the current screen.
func (c *Controller) UpdateSelection(pointerY int) {
	b := buckets[c.screen]
	idx := floorDiv(pointerY-b.offset, b.height)
	if last := len(c.Options()) - 1; idx > last {
		idx = last
	}
	if idx < 0 {
		idx = 0
	}
	if idx == c.selected {
		return
	}
	c.selected = idx
	log.WithFields(log.Fields{
		"screen": c.screen,
		"index":  idx,
	}).Debug("menu hover changed")
	c.notifier.Notify(rules.EventHoverChanged)
}

func (c *Controller) switchTo(s Screen) {
	c.screen = s
	c.selected = 0
}

// HandleSelection activates the highlighted entry.
func (c *Controller) HandleSelection() Selection {
	switch c.screen {
	case ScreenMain:
		switch mainOptions[c.selected] {
		case OptionPlay:
			c.notifier.Notify(rules.EventItemSelected)
			return Selection{Intent: IntentStartGame, Level: c.pendingLevel}
		case OptionLevels:
			c.switchTo(ScreenLevels)
			c.notifier.Notify(rules.EventItemSelected)
		case OptionSettings:
			c.switchTo(ScreenSettings)
			c.notifier.Notify(rules.EventItemSelected)
		case OptionQuit:
			return Selection{Intent: IntentQuit}
		}

	case ScreenSettings:
		switch c.selected {
		case 0:
			c.music = !c.music
			log.WithField("enabled", c.music).Info("background music toggled")
		case 1:
			c.sfx = !c.sfx
			log.WithField("enabled", c.sfx).Info("sound effects toggled")
		default:
			c.switchTo(ScreenMain)
		}
		c.notifier.Notify(rules.EventItemSelected)

	case ScreenLevels:
		c.pendingLevel = c.selected + 1
		c.switchTo(ScreenMain)
		c.notifier.Notify(rules.EventItemSelected)
		log.WithField("level", c.pendingLevel).Info("level selected")
		return Selection{Intent: IntentStartGame, Level: c.pendingLevel}
	}
	return Selection{Intent: IntentNone}
}

// Screen returns the current screen.
func (c *Controller) Screen() Screen { return c.screen }

// SelectedIndex returns the highlighted entry.
func (c *Controller) SelectedIndex() int { return c.selected }

// PendingLevel is the level Play will start.
func (c *Controller) PendingLevel() int { return c.pendingLevel }

// BackgroundMusicEnabled reports the music flag.
func (c *Controller) BackgroundMusicEnabled() bool { return c.music }

// SoundEffectsEnabled reports the sound effects flag.
func (c *Controller) SoundEffectsEnabled() bool { return c.sfx }

// Allows reports whether a sound should accompany e. Hover sounds only play
// on the main screen.
func (c *Controller) Allows(e rules.Event) bool {
	if !c.sfx {
		return false
	}
	if e == rules.EventHoverChanged {
		return c.screen == ScreenMain
	}
	return true
}

// View copies the menu state.
func (c *Controller) View() View {
	return View{
		Screen:                 c.screen,
		Options:                c.Options(),
		SelectedIndex:          c.selected,
		BackgroundMusicEnabled: c.music,
		SoundEffectsEnabled:    c.sfx,
		PendingLevel:           c.pendingLevel,
	}
}
