package countdown

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Parts is a remaining duration split into whole calendar units.
type Parts struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Decompose floors a remaining duration into days, hours, minutes and seconds.
// Negative durations decompose to the zero value.
func Decompose(remaining time.Duration) Parts {
	ms := remaining.Milliseconds()
	if ms <= 0 {
		return Parts{}
	}
	return Parts{
		Days:    int(ms / msPerDay),
		Hours:   int((ms % msPerDay) / msPerHour),
		Minutes: int((ms % msPerHour) / msPerMinute),
		Seconds: int((ms % msPerMinute) / msPerSecond),
	}
}

// Duration reassembles the parts into a whole-second duration.
func (parts Parts) Duration() time.Duration {
	ms := int64(parts.Days)*msPerDay +
		int64(parts.Hours)*msPerHour +
		int64(parts.Minutes)*msPerMinute +
		int64(parts.Seconds)*msPerSecond
	return time.Duration(ms) * time.Millisecond
}

// IsZero reports whether every unit is zero.
func (parts Parts) IsZero() bool {
	return parts == Parts{}
}

// Label formats the parts as "12d 03:04:05", dropping the day count when zero.
func (parts Parts) Label() string {
	clock := fmt.Sprintf("%02d:%02d:%02d", parts.Hours, parts.Minutes, parts.Seconds)
	if parts.Days == 0 {
		return clock
	}
	return fmt.Sprintf("%dd %s", parts.Days, clock)
}
