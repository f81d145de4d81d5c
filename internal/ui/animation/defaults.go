package animation

import "time"

// DigitPresence is the glyph swap of a single digit group: the new value rises
// in from below while the old one leaves upwards.
func DigitPresence() Presence {
	return Presence{
		Initial:    Keyframe{OffsetY: 20, Opacity: 0, Scale: 1},
		Animate:    Keyframe{OffsetY: 0, Opacity: 1, Scale: 1},
		Exit:       Keyframe{OffsetY: -20, Opacity: 0, Scale: 1},
		Transition: Transition{Stiffness: 300, Damping: 30},
	}
}

// CountdownPresence is the countdown panel. It grows out of view on exit.
func CountdownPresence() Presence {
	return Presence{
		Initial:    Keyframe{Opacity: 0, Scale: 0.9},
		Animate:    Keyframe{Opacity: 1, Scale: 1},
		Exit:       Keyframe{Opacity: 0, Scale: 1.5},
		Transition: Transition{Duration: 400 * time.Millisecond},
	}
}

// CelebrationPresence is the celebration panel's bouncy entrance.
func CelebrationPresence() Presence {
	return Presence{
		Initial:    Keyframe{Opacity: 0, Scale: 0.5},
		Animate:    Keyframe{Opacity: 1, Scale: 1},
		Exit:       Keyframe{Opacity: 0, Scale: 0.5},
		Transition: Transition{Duration: 1500 * time.Millisecond, Bounce: 0.5},
	}
}
