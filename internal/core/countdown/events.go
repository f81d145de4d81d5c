package countdown

import "time"

// EventType defines the type of Sampler event.
type EventType string

const (
	EventTick     EventType = "tick"
	EventComplete EventType = "complete"
)

// Event represents a Sampler update for observers.
type Event struct {
	Type      EventType
	Remaining time.Duration
	Parts     Parts
	At        time.Time
}
