package clock

import (
	"sync"
	"time"
)

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Fixed returns a clock frozen at the given instant.
func Fixed(at time.Time) Clock {
	return fixedClock{at: at}
}

type fixedClock struct {
	at time.Time
}

func (clock fixedClock) Now() time.Time {
	return clock.at
}

// Rehearsal returns a clock that starts at the given instant and then advances
// in real time. It is used to play through the last seconds before a target
// without waiting for the real date.
func Rehearsal(start time.Time) Clock {
	return &rehearsalClock{start: start, boot: time.Now()}
}

type rehearsalClock struct {
	start time.Time
	boot  time.Time
}

func (clock *rehearsalClock) Now() time.Time {
	return clock.start.Add(time.Since(clock.boot))
}

// Manual is a clock moved only by its owner.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock positioned at the given instant.
func NewManual(at time.Time) *Manual {
	return &Manual{now: at}
}

// Now returns the current manual instant.
func (clock *Manual) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// Advance moves the clock forward and returns the new instant.
func (clock *Manual) Advance(delta time.Duration) time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(delta)
	return clock.now
}
