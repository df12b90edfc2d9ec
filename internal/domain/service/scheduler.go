package service

import "time"

// TaskScheduler runs delayed tasks keyed by an identifier. Scheduling a key
// that already has a pending task replaces it; only the last write fires.
type TaskScheduler interface {
	// Schedule runs task after delay, cancelling any pending task with the same key.
	Schedule(key string, delay time.Duration, task func())

	// Cancel drops the pending task for key and reports whether one existed.
	Cancel(key string) bool

	// Pending reports whether key has a task waiting to fire.
	Pending(key string) bool

	// Stop cancels every pending task.
	Stop()
}
