package stage

import (
	"log/slog"
	"slices"
	"sync"
)

// ViewState selects which of the two screens is shown.
type ViewState string

const (
	StateCountdown   ViewState = "countdown"
	StateCelebration ViewState = "celebration"
)

// Stage owns the view state. It starts in countdown and can move to
// celebration exactly once; there is no way back.
type Stage struct {
	mu        sync.Mutex
	state     ViewState
	observers []func(ViewState)
	logger    *slog.Logger
}

// New creates a stage in the countdown state.
func New(logger *slog.Logger) *Stage {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stage{
		state:  StateCountdown,
		logger: logger.With("component", "stage"),
	}
}

// State returns the current view state.
func (stage *Stage) State() ViewState {
	stage.mu.Lock()
	defer stage.mu.Unlock()
	return stage.state
}

// OnChange registers an observer called after the switch to celebration.
func (stage *Stage) OnChange(observer func(ViewState)) {
	stage.mu.Lock()
	defer stage.mu.Unlock()
	stage.observers = append(stage.observers, observer)
}

// Advance switches to celebration. It reports false if the switch already
// happened.
func (stage *Stage) Advance() bool {
	stage.mu.Lock()
	if stage.state == StateCelebration {
		stage.mu.Unlock()
		return false
	}
	stage.state = StateCelebration
	observers := slices.Clone(stage.observers)
	stage.mu.Unlock()

	stage.logger.Info("view state changed",
		slog.String("from", string(StateCountdown)),
		slog.String("to", string(StateCelebration)))
	for _, observer := range observers {
		observer(StateCelebration)
	}
	return true
}
