package commands

import (
	"fmt"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/battlesnakeio/holosnake/layout"
	"github.com/battlesnakeio/holosnake/menu"
	"github.com/battlesnakeio/holosnake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor  = termbox.ColorDefault
	bgColor       = termbox.ColorDefault
	snakeColor    = termbox.ColorGreen
	headColor     = termbox.ColorCyan
	wallColor     = termbox.ColorRed
	obstacleColor = termbox.ColorYellow
	foodColor     = termbox.ColorMagenta
)

const helpText = "drag/arrows: move  click/enter: select  right click/esc: menu  h: hide hand  q: quit"

// termboxRenderer is a worker.Sink drawing to the terminal.
type termboxRenderer struct{}

func (termboxRenderer) Render(v controller.View) error {
	return render(v)
}

func render(v controller.View) error {
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}
	vp := currentViewport()

	switch {
	case v.Mode == controller.ModePlaying && v.Game != nil:
		renderGame(vp, v.Game)
		if v.Paused {
			centered(vp, layout.ArenaHeight/2, termbox.ColorWhite|termbox.AttrBold, "Paused - Show hand to continue")
		}
	default:
		renderMenu(vp, v.Menu)
	}
	tbprint(0, vp.h-1, defaultColor, defaultColor, helpText)

	return termbox.Flush()
}

// menuRow is the arena height at the middle of entry i on screen s.
func menuRow(s menu.Screen, i int) int {
	if s == menu.ScreenLevels {
		return 150 + 80*i + 40
	}
	return 250 + 100*i + 50
}

func renderMenu(vp viewport, m menu.View) {
	tbprint(0, 0, termbox.ColorGreen|termbox.AttrBold, defaultColor, "HOLOSNAKE")
	tbprint(12, 0, defaultColor, defaultColor, fmt.Sprintf("level %d", m.PendingLevel))
	for i, opt := range m.Options {
		fg, bg := defaultColor, bgColor
		if i == m.SelectedIndex {
			fg, bg = termbox.ColorBlack, termbox.ColorGreen
		}
		_, y := vp.toCell(layout.Point{Y: menuRow(m.Screen, i)})
		x := (vp.w - runewidth.StringWidth(opt)) / 2
		tbprint(x, y, fg, bg, opt)
	}
}

func renderGame(vp viewport, g *rules.Snapshot) {
	for _, w := range g.Walls {
		fillRect(vp, w, '█', wallColor)
	}
	for _, o := range g.Obstacles {
		fillRect(vp, o.Rect, '▒', obstacleColor)
	}
	fillRect(vp, g.FoodRect, '●', foodColor)

	for _, p := range g.Trail {
		x, y := vp.toCell(p)
		termbox.SetCell(x, y, ' ', snakeColor, snakeColor)
	}
	if len(g.Trail) > 0 {
		x, y := vp.toCell(g.Head)
		termbox.SetCell(x, y, '@', termbox.ColorBlack, headColor)
	}

	status := fmt.Sprintf("Score: %d  High Score: %d  Level: %d", g.Score, g.HighScore, g.Level)
	if g.Invincible {
		status += "  (invincible)"
	}
	tbprint(0, 0, defaultColor, defaultColor, status)

	if g.GameOver {
		centered(vp, layout.ArenaHeight/2-60, wallColor|termbox.AttrBold, "Game Over")
		if g.Cause != "" {
			centered(vp, layout.ArenaHeight/2, defaultColor, g.Cause)
		}
	}
}

// fillRect paints the cells covering r.
func fillRect(vp viewport, r layout.Rect, ch rune, color termbox.Attribute) {
	x0, y0 := vp.toCell(layout.Point{X: r.X, Y: r.Y})
	x1, y1 := vp.toCell(layout.Point{X: r.Right() - 1, Y: r.Bottom() - 1})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			termbox.SetCell(x, y, ch, color, bgColor)
		}
	}
}

func centered(vp viewport, arenaY int, fg termbox.Attribute, msg string) {
	_, y := vp.toCell(layout.Point{Y: arenaY})
	x := (vp.w - runewidth.StringWidth(msg)) / 2
	tbprint(x, y, fg, bgColor, msg)
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
