package celebration

import (
	"image/color"
	"log/slog"
	"sync"
	"time"

	"midnight/internal/ui/confetti"
)

// Emitter launches particle bursts.
type Emitter interface {
	Emit(options confetti.Options)
}

// Bursts returns the pair emitted on every frame: one from the left edge
// aimed up and right, one from the right edge aimed up and left.
func Bursts() []confetti.Options {
	shared := []color.Color{
		confetti.MustHex("#ffffff"),
		confetti.MustHex("#ffd700"),
		confetti.MustHex("#c0c0c0"),
	}
	return []confetti.Options{
		{
			ParticleCount: 5,
			Angle:         60,
			Spread:        55,
			Origin:        confetti.Point{X: 0, Y: 0.5},
			Colors:        append(append([]color.Color(nil), shared...), confetti.MustHex("#4f46e5")),
		},
		{
			ParticleCount: 5,
			Angle:         120,
			Spread:        55,
			Origin:        confetti.Point{X: 1, Y: 0.5},
			Colors:        append(append([]color.Color(nil), shared...), confetti.MustHex("#7c3aed")),
		},
	}
}

// Burster emits confetti once per frame for a fixed window.
type Burster struct {
	mu      sync.Mutex
	emitter Emitter
	window  time.Duration
	bursts  []confetti.Options
	end     time.Time
	active  bool
	frames  int
	logger  *slog.Logger
}

// NewBurster creates an idle burster.
func NewBurster(emitter Emitter, window time.Duration, logger *slog.Logger) *Burster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Burster{
		emitter: emitter,
		window:  window,
		bursts:  Bursts(),
		logger:  logger.With("component", "confetti"),
	}
}

// Begin opens the emission window at now.
func (burster *Burster) Begin(now time.Time) {
	burster.mu.Lock()
	burster.end = now.Add(burster.window)
	burster.active = true
	burster.frames = 0
	burster.mu.Unlock()

	burster.logger.Info("celebration started", slog.Duration("window", burster.window))
}

// Frame emits one round of bursts and reports whether another frame should be
// scheduled. Nothing is emitted at or after the end of the window.
func (burster *Burster) Frame(now time.Time) bool {
	burster.mu.Lock()
	if !burster.active {
		burster.mu.Unlock()
		return false
	}
	if !now.Before(burster.end) {
		burster.active = false
		frames := burster.frames
		burster.mu.Unlock()
		burster.logger.Info("celebration finished", slog.Int("frames", frames))
		return false
	}
	burster.frames++
	bursts := burster.bursts
	burster.mu.Unlock()

	for _, burst := range bursts {
		burster.emitter.Emit(burst)
	}
	return true
}

// Stop closes the emission window early. Later frames emit nothing.
func (burster *Burster) Stop() {
	burster.mu.Lock()
	wasActive := burster.active
	burster.active = false
	frames := burster.frames
	burster.mu.Unlock()

	if wasActive {
		burster.logger.Info("celebration cut short", slog.Int("frames", frames))
	}
}

// Active reports whether the emission window is open.
func (burster *Burster) Active() bool {
	burster.mu.Lock()
	defer burster.mu.Unlock()
	return burster.active
}

// Frames returns the number of frames that emitted bursts.
func (burster *Burster) Frames() int {
	burster.mu.Lock()
	defer burster.mu.Unlock()
	return burster.frames
}
