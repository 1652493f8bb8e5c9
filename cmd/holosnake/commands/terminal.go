package commands

import (
	"context"

	"github.com/battlesnakeio/holosnake/input"
	"github.com/battlesnakeio/holosnake/layout"
	"github.com/battlesnakeio/holosnake/worker"
	termbox "github.com/nsf/termbox-go"
)

// keyStep is how far an arrow key moves the pointer, in arena pixels.
const keyStep = 40

// viewport maps the arena onto the terminal. Row 0 is the status line and
// the last row the help line, the board is everything in between.
type viewport struct {
	w, h int
}

func currentViewport() viewport {
	w, h := termbox.Size()
	return viewport{w: w, h: h}
}

func (v viewport) boardRows() int {
	if v.h < 3 {
		return 1
	}
	return v.h - 2
}

func (v viewport) cols() int {
	if v.w < 1 {
		return 1
	}
	return v.w
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// toArena returns the arena point at the center of a terminal cell.
func (v viewport) toArena(cx, cy int) layout.Point {
	cols, rows := v.cols(), v.boardRows()
	cx = clamp(cx, 0, cols-1)
	cy = clamp(cy-1, 0, rows-1)
	return layout.Point{
		X: (2*cx + 1) * layout.ArenaWidth / (2 * cols),
		Y: (2*cy + 1) * layout.ArenaHeight / (2 * rows),
	}
}

// toCell returns the terminal cell holding an arena point.
func (v viewport) toCell(p layout.Point) (int, int) {
	cols, rows := v.cols(), v.boardRows()
	x := clamp(p.X*cols/layout.ArenaWidth, 0, cols-1)
	y := clamp(p.Y*rows/layout.ArenaHeight, 0, rows-1)
	return x, y + 1
}

// terminalInput turns mouse and keyboard events into frames. The mouse
// position is the hand position, a left click or Enter is a pinch and a right
// click or Esc is a fist. Pressing h hides the hand.
type terminalInput struct {
	pointer *layout.Point
	hidden  bool
	pinch   bool
	fist    bool
	stopped bool
}

func (ti *terminalInput) apply(ev termbox.Event, v viewport) {
	switch ev.Type {
	case termbox.EventMouse:
		p := v.toArena(ev.MouseX, ev.MouseY)
		ti.pointer = &p
		ti.hidden = false
		if ev.Mod&termbox.ModMotion != 0 {
			return
		}
		switch ev.Key {
		case termbox.MouseLeft:
			ti.pinch = true
		case termbox.MouseRight:
			ti.fist = true
		}
	case termbox.EventKey:
		ti.applyKey(ev)
	case termbox.EventInterrupt:
		ti.stopped = true
	}
}

func (ti *terminalInput) applyKey(ev termbox.Event) {
	switch ev.Key {
	case termbox.KeyEnter, termbox.KeySpace:
		ti.pinch = true
	case termbox.KeyEsc, termbox.KeyBackspace, termbox.KeyBackspace2:
		ti.fist = true
	case termbox.KeyCtrlC:
		ti.stopped = true
	case termbox.KeyArrowUp:
		ti.nudge(0, -keyStep)
	case termbox.KeyArrowDown:
		ti.nudge(0, keyStep)
	case termbox.KeyArrowLeft:
		ti.nudge(-keyStep, 0)
	case termbox.KeyArrowRight:
		ti.nudge(keyStep, 0)
	}
	switch ev.Ch {
	case 'q':
		ti.stopped = true
	case 'h':
		ti.hidden = !ti.hidden
	}
}

func (ti *terminalInput) nudge(dx, dy int) {
	p := layout.Point{X: layout.ArenaWidth / 2, Y: layout.ArenaHeight / 2}
	if ti.pointer != nil {
		p = *ti.pointer
	}
	p.X = clamp(p.X+dx, 0, layout.ArenaWidth-1)
	p.Y = clamp(p.Y+dy, 0, layout.ArenaHeight-1)
	ti.pointer = &p
	ti.hidden = false
}

// frame returns the input gathered since the last call and clears the one
// shot gestures.
func (ti *terminalInput) frame() (input.Frame, error) {
	if ti.stopped {
		return input.Frame{}, worker.ErrStopped
	}
	f := input.Frame{Pinch: ti.pinch, Fist: ti.fist}
	if ti.pointer != nil && !ti.hidden {
		p := *ti.pointer
		f.Pointer = &p
	} else {
		f.Pinch, f.Fist = false, false
	}
	ti.pinch, ti.fist = false, false
	return f, nil
}

// termboxSource is a worker.Source reading the terminal.
type termboxSource struct {
	events <-chan termbox.Event
	state  terminalInput
}

func newTermboxSource() *termboxSource {
	return &termboxSource{events: setupEventQueue()}
}

func (s *termboxSource) Poll(ctx context.Context) (input.Frame, error) {
	v := currentViewport()
	for {
		select {
		case ev := <-s.events:
			if ev.Type == termbox.EventError {
				return input.Frame{}, ev.Err
			}
			s.state.apply(ev, v)
		case <-ctx.Done():
			return input.Frame{}, ctx.Err()
		default:
			return s.state.frame()
		}
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
