package termgrid

import "sync/atomic"

// The underlying driver is not safe for multiple instances, so session
// creation is gated by a process-wide flag. Acquisition is a single
// compare-and-swap attempt: two goroutines racing Open can never both
// succeed, and the loser fails immediately rather than waiting.
var sessionLive atomic.Bool

func acquireSessionLock() bool {
	return sessionLive.CompareAndSwap(false, true)
}

func releaseSessionLock() {
	sessionLive.Store(false)
}
