package animation

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingEngine returns an engine whose animations are collected instead of
// handed to the driver, so tests can step them by hand.
func capturingEngine(t *testing.T) (*Engine, *[]*fyne.Animation) {
	t.Helper()
	test.NewApp()
	started := []*fyne.Animation{}
	engine := New()
	engine.start = func(anim *fyne.Animation) {
		started = append(started, anim)
	}
	return engine, &started
}

func TestSpringCurveEndpoints(t *testing.T) {
	for _, transition := range []Transition{
		DigitPresence().Transition,
		CountdownPresence().Transition,
		CelebrationPresence().Transition,
		{Stiffness: 100, Damping: 40},
	} {
		assert.Equal(t, float32(0), transition.Curve(0))
		assert.Equal(t, float32(1), transition.Curve(1))
		assert.InDelta(t, 1, transition.Curve(0.99), 0.01)
	}
}

func TestSpringSettleTime(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, CelebrationPresence().Transition.SettleTime())

	digit := DigitPresence().Transition.SettleTime()
	assert.Greater(t, digit, 300*time.Millisecond)
	assert.Less(t, digit, time.Second)
}

func TestBouncySpringOvershoots(t *testing.T) {
	transition := CelebrationPresence().Transition
	peak := float32(0)
	for i := 1; i < 100; i++ {
		if value := transition.Curve(float32(i) / 100); value > peak {
			peak = value
		}
	}
	assert.Greater(t, peak, float32(1))
}

func TestLerpClampsOpacity(t *testing.T) {
	frame := Lerp(Keyframe{Opacity: 0, Scale: 0.5}, Keyframe{Opacity: 1, Scale: 1}, 1.2)
	assert.Equal(t, float32(1), frame.Opacity)
	assert.InDelta(t, 1.1, frame.Scale, 0.0001)
}

func TestPlayAppliesEndStateAndCallsDone(t *testing.T) {
	engine, started := capturingEngine(t)
	presence := DigitPresence()

	var frames []Keyframe
	done := 0
	engine.Play("seconds", presence.Initial, presence.Animate, presence.Transition,
		func(frame Keyframe) { frames = append(frames, frame) },
		func() { done++ })

	require.Len(t, *started, 1)
	require.True(t, engine.Active("seconds"))

	anim := (*started)[0]
	anim.Tick(0.5)
	anim.Tick(1)
	anim.Tick(1)

	require.Len(t, frames, 2)
	assert.Equal(t, presence.Animate, frames[1])
	assert.Equal(t, 1, done)
	assert.False(t, engine.Active("seconds"))
}

func TestPlaySameKeyReplacesRunning(t *testing.T) {
	engine, started := capturingEngine(t)
	presence := DigitPresence()

	engine.Play("seconds", presence.Initial, presence.Animate, presence.Transition, nil, nil)
	engine.Play("seconds", presence.Animate, presence.Exit, presence.Transition, nil, nil)
	engine.Play("minutes", presence.Initial, presence.Animate, presence.Transition, nil, nil)

	require.Len(t, *started, 3)
	(*started)[0].Tick(1)
	assert.True(t, engine.Active("seconds"), "a stale animation must not release the newer one")

	engine.StopAll()
	assert.False(t, engine.Active("seconds"))
	assert.False(t, engine.Active("minutes"))
}

func TestFramesStopWhenFrameReturnsFalse(t *testing.T) {
	engine, started := capturingEngine(t)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)

	calls := 0
	engine.Frames("confetti", func() time.Time { return now }, func(time.Time) bool {
		calls++
		return calls < 3
	})

	require.Len(t, *started, 1)
	anim := (*started)[0]
	for i := 0; i < 10; i++ {
		anim.Tick(float32(i) / 10)
	}

	assert.Equal(t, 3, calls)
	assert.False(t, engine.Active("confetti"))
}
