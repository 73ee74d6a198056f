package motion

import "sync/atomic"

// Latch is a one-shot flag. The zero value is unfired.
type Latch struct {
	fired atomic.Bool
}

// Fire trips the latch. It returns true only on the first call.
func (l *Latch) Fire() bool {
	return l.fired.CompareAndSwap(false, true)
}

// Fired reports whether the latch has been tripped.
func (l *Latch) Fired() bool {
	return l.fired.Load()
}
