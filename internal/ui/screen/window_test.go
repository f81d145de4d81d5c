package screen

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"midnight/internal/core/clock"
	"midnight/internal/core/countdown"
	"midnight/internal/core/model"
	"midnight/internal/core/stage"
	"midnight/internal/ui/animation"
	"midnight/internal/ui/celebration"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var midnight = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)

func newTestWindow(t *testing.T, now time.Time) (*Window, *countdown.Sampler) {
	t.Helper()
	app := test.NewApp()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewManual(now)

	sampler := countdown.New(model.CountdownConfig{Target: midnight}, countdown.Config{
		TickInterval: time.Hour,
		Clock:        clk,
		Logger:       logger,
	})
	engine := animation.New()
	view := celebration.New(model.CelebrationConfig{
		Window:   15 * time.Second,
		Headline: "2026",
		Tagline:  "Happy New Year",
	}, engine, clk, logger)

	window := New(app, Config{Title: "Midnight", Footer: "Designed for 2026"}, sampler, view, engine, logger)
	return window, sampler
}

func TestWindowStartsOnCountdown(t *testing.T) {
	window, sampler := newTestWindow(t, midnight.Add(-time.Hour))

	window.Activate()
	defer window.Deactivate()

	assert.Equal(t, stage.StateCountdown, window.State())
	assert.True(t, sampler.Running())
	assert.Equal(t, "D E S I G N E D   F O R   2 0 2 6", window.footer.Text)
}

func TestWindowSwitchesToCelebrationOnce(t *testing.T) {
	window, sampler := newTestWindow(t, midnight.Add(time.Second))

	window.Activate()
	defer window.Deactivate()

	require.True(t, sampler.Completed())
	require.Eventually(t, func() bool {
		return window.State() == stage.StateCelebration
	}, time.Second, 10*time.Millisecond)
	assert.True(t, window.panel.Parts().IsZero())

	window.complete()
	assert.Equal(t, stage.StateCelebration, window.State())
}

func TestWindowMountsCelebrationAfterCountdownExits(t *testing.T) {
	window, _ := newTestWindow(t, midnight.Add(time.Second))

	window.Activate()
	defer window.Deactivate()

	require.Eventually(t, func() bool {
		return len(window.slot.Objects) == 1 && window.slot.Objects[0] == window.celebration.Content()
	}, time.Second, 10*time.Millisecond)
	assert.True(t, window.celebration.Celebrating())
	assert.NotContains(t, window.slot.Objects, window.panel.Content())
}

func TestWindowDeactivateEndsCelebration(t *testing.T) {
	window, _ := newTestWindow(t, midnight.Add(time.Second))

	window.Activate()
	require.Eventually(t, window.celebration.Celebrating, time.Second, 10*time.Millisecond)

	window.Deactivate()
	assert.False(t, window.celebration.Celebrating())
	assert.Equal(t, stage.StateCelebration, window.State())
}

func TestWindowDeactivateReleasesSampler(t *testing.T) {
	window, sampler := newTestWindow(t, midnight.Add(-time.Hour))

	window.Activate()
	require.True(t, sampler.Running())

	window.Deactivate()
	window.Deactivate()
	assert.False(t, sampler.Running())
	assert.Equal(t, stage.StateCountdown, window.State())
}
