package countdown

import (
	"log/slog"
	"sync"
	"time"

	"midnight/internal/core/clock"
	"midnight/internal/core/model"
)

// Config contains runtime options for Sampler.
type Config struct {
	TickInterval time.Duration
	Clock        clock.Clock
	Logger       *slog.Logger
}

// Sampler reads the clock on a fixed cadence and reports the time left until
// the target. It stops itself and fires its completion trigger once the target
// is reached.
type Sampler struct {
	mu         sync.Mutex
	config     model.CountdownConfig
	options    Config
	logger     *slog.Logger
	trigger    *Trigger
	onComplete func()
	remaining  time.Duration
	parts      Parts
	sampledAt  time.Time
	events     []chan Event
	stopCh     chan struct{}
	running    bool
}

// New creates a Sampler counting down to config.Target.
func New(config model.CountdownConfig, options Config) *Sampler {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clock.System
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sampler := &Sampler{
		config:  config,
		options: options,
		logger:  logger.With("component", "sampler"),
	}
	sampler.trigger = NewTrigger(sampler.complete)
	return sampler
}

// OnComplete registers the callback run when the target is reached.
func (sampler *Sampler) OnComplete(handler func()) {
	sampler.mu.Lock()
	defer sampler.mu.Unlock()
	sampler.onComplete = handler
}

// Subscribe registers a new observer channel.
func (sampler *Sampler) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	sampler.mu.Lock()
	sampler.events = append(sampler.events, ch)
	sampler.mu.Unlock()
	return ch
}

// Start acquires the ticker and takes an immediate sample. It is a no-op while
// running or once the target has been reached.
func (sampler *Sampler) Start() {
	sampler.mu.Lock()
	if sampler.running || sampler.trigger.Fired() {
		sampler.mu.Unlock()
		return
	}
	sampler.running = true
	stopCh := make(chan struct{})
	sampler.stopCh = stopCh
	sampler.mu.Unlock()

	sampler.logger.Info("countdown started",
		slog.Time("target", sampler.config.Target),
		slog.Duration("tick", sampler.options.TickInterval))

	sampler.tick(sampler.options.Clock.Now())
	go sampler.run(stopCh)
}

// Stop releases the ticker and closes observers. Safe to call repeatedly.
func (sampler *Sampler) Stop() {
	sampler.mu.Lock()
	wasRunning := sampler.running
	sampler.releaseLocked()
	events := sampler.events
	sampler.events = nil
	sampler.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
	if wasRunning {
		sampler.logger.Info("countdown stopped")
	}
}

// Running reports whether the ticker is held.
func (sampler *Sampler) Running() bool {
	sampler.mu.Lock()
	defer sampler.mu.Unlock()
	return sampler.running
}

// Completed reports whether the target has been reached.
func (sampler *Sampler) Completed() bool {
	return sampler.trigger.Fired()
}

// Remaining returns the time left as of the last sample.
func (sampler *Sampler) Remaining() time.Duration {
	sampler.mu.Lock()
	defer sampler.mu.Unlock()
	return sampler.remaining
}

// Snapshot returns the last sample as an event.
func (sampler *Sampler) Snapshot() Event {
	sampler.mu.Lock()
	defer sampler.mu.Unlock()
	eventType := EventTick
	if sampler.trigger.Fired() {
		eventType = EventComplete
	}
	return Event{
		Type:      eventType,
		Remaining: sampler.remaining,
		Parts:     sampler.parts,
		At:        sampler.sampledAt,
	}
}

func (sampler *Sampler) run(stopCh <-chan struct{}) {
	ticker := time.NewTicker(sampler.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			sampler.tick(sampler.options.Clock.Now())
		}
	}
}

func (sampler *Sampler) tick(now time.Time) {
	sampler.mu.Lock()
	if !sampler.running || sampler.trigger.Fired() {
		sampler.mu.Unlock()
		return
	}

	remaining := sampler.config.Target.Sub(now)
	sampler.sampledAt = now
	if remaining > 0 {
		sampler.remaining = remaining
		sampler.parts = Decompose(remaining)
		sampler.emitLocked(Event{
			Type:      EventTick,
			Remaining: remaining,
			Parts:     sampler.parts,
			At:        now,
		})
		sampler.mu.Unlock()
		return
	}

	sampler.remaining = 0
	sampler.parts = Parts{}
	sampler.releaseLocked()
	sampler.emitLocked(Event{
		Type: EventComplete,
		At:   now,
	})
	sampler.mu.Unlock()

	// A tick that was already in flight when the ticker was released lands
	// here too; only the first one gets through.
	sampler.trigger.Fire()
}

func (sampler *Sampler) complete() {
	sampler.mu.Lock()
	handler := sampler.onComplete
	sampler.mu.Unlock()

	sampler.logger.Info("target reached", slog.Time("target", sampler.config.Target))
	if handler != nil {
		handler()
	}
}

func (sampler *Sampler) releaseLocked() {
	if !sampler.running {
		return
	}
	close(sampler.stopCh)
	sampler.running = false
}

func (sampler *Sampler) emitLocked(event Event) {
	for _, ch := range sampler.events {
		select {
		case ch <- event:
		default:
		}
	}
}
