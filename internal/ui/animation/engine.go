package animation

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Engine runs keyed transitions on fyne animations. Starting a transition
// under a key that is already animating stops the previous one.
type Engine struct {
	mu      sync.Mutex
	running map[string]*fyne.Animation
	start   func(*fyne.Animation)
}

// New creates an animation engine driven by the fyne animation runner.
func New() *Engine {
	return &Engine{
		running: make(map[string]*fyne.Animation),
		start: func(anim *fyne.Animation) {
			anim.Start()
		},
	}
}

// Play animates from one keyframe to another, calling apply on every frame
// and done once the end state has been applied. Either callback may be nil.
func (engine *Engine) Play(key string, from, to Keyframe, transition Transition, apply func(Keyframe), done func()) {
	var anim *fyne.Animation
	finished := false
	anim = fyne.NewAnimation(transition.SettleTime(), func(progress float32) {
		if finished {
			return
		}
		if apply != nil {
			apply(Lerp(from, to, transition.Curve(progress)))
		}
		if progress < 1 {
			return
		}
		finished = true
		engine.release(key, anim)
		if done != nil {
			done()
		}
	})
	anim.Curve = fyne.AnimationLinear

	engine.launch(key, anim)
}

// Frames calls frame with the current time on every display refresh until
// frame returns false.
func (engine *Engine) Frames(key string, now func() time.Time, frame func(time.Time) bool) {
	var anim *fyne.Animation
	stopped := false
	anim = &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
		Curve:       fyne.AnimationLinear,
		Tick: func(float32) {
			if stopped {
				return
			}
			if frame(now()) {
				return
			}
			stopped = true
			anim.Stop()
			engine.release(key, anim)
		},
	}

	engine.launch(key, anim)
}

// Stop halts the animation running under key, if any.
func (engine *Engine) Stop(key string) {
	engine.mu.Lock()
	anim := engine.running[key]
	delete(engine.running, key)
	engine.mu.Unlock()

	if anim != nil {
		anim.Stop()
	}
}

// StopAll halts every running animation.
func (engine *Engine) StopAll() {
	engine.mu.Lock()
	running := engine.running
	engine.running = make(map[string]*fyne.Animation)
	engine.mu.Unlock()

	for _, anim := range running {
		anim.Stop()
	}
}

// Active reports whether an animation is running under key.
func (engine *Engine) Active(key string) bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	_, ok := engine.running[key]
	return ok
}

func (engine *Engine) launch(key string, anim *fyne.Animation) {
	engine.mu.Lock()
	previous := engine.running[key]
	engine.running[key] = anim
	engine.mu.Unlock()

	if previous != nil {
		previous.Stop()
	}
	engine.start(anim)
}

func (engine *Engine) release(key string, anim *fyne.Animation) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running[key] == anim {
		delete(engine.running, key)
	}
}
