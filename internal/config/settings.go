package config

import (
	"strconv"
	"time"

	"midnight/internal/core/clock"
	"midnight/internal/core/model"
)

// Settings holds the fixed values the countdown is built from.
type Settings struct {
	Target            time.Time
	TickInterval      time.Duration
	CelebrationWindow time.Duration

	Title      string
	Tagline    string
	Footer     string
	Fullscreen bool

	// RehearseFrom, when set, starts the clock at this instant instead of the
	// wall clock.
	RehearseFrom time.Time
}

// DefaultSettings returns the countdown to New Year 2026, local time.
func DefaultSettings() Settings {
	return Settings{
		Target:            time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local),
		TickInterval:      time.Second,
		CelebrationWindow: 15 * time.Second,
		Title:             "Midnight",
		Tagline:           "Happy New Year",
		Footer:            "Designed for 2026",
		Fullscreen:        false,
	}
}

// CountdownConfig converts settings to the sampler's target.
func (settings Settings) CountdownConfig() model.CountdownConfig {
	return model.CountdownConfig{Target: settings.Target}
}

// CelebrationConfig converts settings to the celebration view config. The
// headline is the target's year.
func (settings Settings) CelebrationConfig() model.CelebrationConfig {
	return model.CelebrationConfig{
		Window:   settings.CelebrationWindow,
		Headline: strconv.Itoa(settings.Target.Year()),
		Tagline:  settings.Tagline,
	}
}

// DisplayConfig converts settings to the root view's static text.
func (settings Settings) DisplayConfig() model.DisplayConfig {
	return model.DisplayConfig{
		Title:  settings.Title,
		Footer: settings.Footer,
	}
}

// Clock returns the clock the countdown should read.
func (settings Settings) Clock() clock.Clock {
	if settings.RehearseFrom.IsZero() {
		return clock.System
	}
	return clock.Rehearsal(settings.RehearseFrom)
}
