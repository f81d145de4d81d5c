package countdown

import "sync/atomic"

// TriggerState is the state of a Trigger.
type TriggerState string

const (
	TriggerWaiting TriggerState = "waiting"
	TriggerFired   TriggerState = "fired"
)

// Trigger is a one-shot edge detector. Its callback runs at most once no matter
// how many times or from how many goroutines Fire is called.
type Trigger struct {
	fired    atomic.Bool
	callback func()
}

// NewTrigger creates a waiting trigger. A nil callback is allowed.
func NewTrigger(callback func()) *Trigger {
	return &Trigger{callback: callback}
}

// Fire moves the trigger to fired and runs the callback. It reports whether
// this call performed the transition.
func (trigger *Trigger) Fire() bool {
	if !trigger.fired.CompareAndSwap(false, true) {
		return false
	}
	if trigger.callback != nil {
		trigger.callback()
	}
	return true
}

// Fired reports whether the trigger has fired.
func (trigger *Trigger) Fired() bool {
	return trigger.fired.Load()
}

// State returns the current trigger state.
func (trigger *Trigger) State() TriggerState {
	if trigger.Fired() {
		return TriggerFired
	}
	return TriggerWaiting
}
