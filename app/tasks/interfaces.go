package tasks

import "time"

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application to run periodic session housekeeping.
// Example usage:
//
//	scheduler := NewScheduler(store, sessionTTL, interval, workerCount)
//	scheduler.Start()
//	defer scheduler.Stop()
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}

// SessionExpirer removes sessions idle for longer than ttl and reports how
// many were removed.
type SessionExpirer interface {
	ExpireIdle(ttl time.Duration) int
	Count() int
}
