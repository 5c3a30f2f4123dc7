package scrollstory

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer, false if it already fired or was stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay on the host's event loop.
// Implementations must never run fn concurrently with other event handling.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
