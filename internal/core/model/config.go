package model

import "time"

// CountdownConfig defines the moment being counted down to.
type CountdownConfig struct {
	Target time.Time
}

// CelebrationConfig defines what happens once the target is reached.
type CelebrationConfig struct {
	Window   time.Duration
	Headline string
	Tagline  string
}

// DisplayConfig contains the static text around the countdown.
type DisplayConfig struct {
	Title  string
	Footer string
}
