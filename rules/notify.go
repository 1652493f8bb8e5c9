package rules

// Event is a discrete notification emitted by the menu, the simulation and
// the orchestrator. Sinks must not block the frame tick.
type Event string

const (
	// EventHoverChanged fires when the highlighted menu entry changes.
	EventHoverChanged Event = "hover-changed"
	// EventItemSelected fires when a menu entry is activated, and when a
	// fist gesture leaves a running game.
	EventItemSelected Event = "item-selected"
	// EventFoodEaten fires once per tick in which the head reaches food.
	EventFoodEaten Event = "food-eaten"
	// EventGameOver fires when a round ends.
	EventGameOver Event = "game-over"
	// EventGameStarted fires when the menu hands over to a new simulation.
	EventGameStarted Event = "game-started"
	// EventReturnedToMenu fires when a running game is abandoned.
	EventReturnedToMenu Event = "returned-to-menu"
)

// Notifier receives events.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) { f(e) }

// Discard drops every event.
var Discard Notifier = NotifierFunc(func(Event) {})

// Notifiers fans an event out to each notifier in order.
type Notifiers []Notifier

// Notify forwards e to every notifier.
func (ns Notifiers) Notify(e Event) {
	for _, n := range ns {
		n.Notify(e)
	}
}
