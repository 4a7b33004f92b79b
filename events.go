package fader

// EventType identifies a fader lifecycle event.
type EventType uint8

const (
	EventStarted   EventType = iota // animation left its delay
	EventCompleted                  // animation reached its end value
	EventCancelled                  // animation stopped by a cancel policy or Stop
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventCompleted:
		return "completed"
	case EventCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Event describes one animation lifecycle transition on a fader.
type Event struct {
	Type        EventType
	Fader       string
	Target      string // empty when the target is not Named
	Direction   Direction
	Mode        Mode
	AnimationID uint64
}

// EventSink is the interface for optional event forwarding, e.g. into an
// ECS world. When set on a Manager, every fader it owns reports through it.
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// EmitEvent implements EventSink.
func (f EventSinkFunc) EmitEvent(event Event) { f(event) }
