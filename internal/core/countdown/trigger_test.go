package countdown

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerFiresOnce(t *testing.T) {
	calls := 0
	trigger := NewTrigger(func() { calls++ })

	assert.Equal(t, TriggerWaiting, trigger.State())
	assert.True(t, trigger.Fire())
	assert.False(t, trigger.Fire())
	assert.False(t, trigger.Fire())

	assert.Equal(t, 1, calls)
	assert.Equal(t, TriggerFired, trigger.State())
}

func TestTriggerConcurrentFire(t *testing.T) {
	var calls atomic.Int32
	var wins atomic.Int32
	trigger := NewTrigger(func() { calls.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if trigger.Fire() {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(1), wins.Load())
}

func TestTriggerNilCallback(t *testing.T) {
	trigger := NewTrigger(nil)
	assert.True(t, trigger.Fire())
	assert.True(t, trigger.Fired())
}
