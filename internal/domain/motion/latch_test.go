package motion

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatch_FiresOnce(t *testing.T) {
	var l Latch
	assert.False(t, l.Fired())

	assert.True(t, l.Fire())
	for range 10 {
		assert.False(t, l.Fire())
	}
	assert.True(t, l.Fired())
}

func TestLatch_ConcurrentFireHasSingleWinner(t *testing.T) {
	var l Latch
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Fire() {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}
