package display

import (
	"fmt"

	"midnight/internal/core/countdown"
)

// Unit names a digit group.
type Unit string

const (
	UnitDays    Unit = "Days"
	UnitHours   Unit = "Hours"
	UnitMinutes Unit = "Minutes"
	UnitSeconds Unit = "Seconds"
)

// Units lists the groups in display order.
var Units = []Unit{UnitDays, UnitHours, UnitMinutes, UnitSeconds}

// Change is a digit group whose value differs between two renders.
type Change struct {
	Unit     Unit
	Previous int
	Current  int
}

// Diff reports the groups that changed between prev and next, in display order.
func Diff(prev, next countdown.Parts) []Change {
	var changes []Change
	for _, unit := range Units {
		before, after := Value(prev, unit), Value(next, unit)
		if before != after {
			changes = append(changes, Change{Unit: unit, Previous: before, Current: after})
		}
	}
	return changes
}

// Value returns the value of one unit of parts.
func Value(parts countdown.Parts, unit Unit) int {
	switch unit {
	case UnitDays:
		return parts.Days
	case UnitHours:
		return parts.Hours
	case UnitMinutes:
		return parts.Minutes
	case UnitSeconds:
		return parts.Seconds
	default:
		return 0
	}
}

// Format pads a value to two digits. Day counts above 99 keep all their digits.
func Format(value int) string {
	return fmt.Sprintf("%02d", value)
}
