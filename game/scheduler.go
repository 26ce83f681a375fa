package game

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled task. Calling it more than once is a no-op.
type CancelFunc func()

// Scheduler runs fn once after delay and then every period until cancelled
type Scheduler interface {
	Schedule(delay, period time.Duration, fn func()) CancelFunc
}

// TimerScheduler runs each schedule on its own goroutine
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay, period time.Duration, fn func()) CancelFunc {
	stop := make(chan struct{})
	var once sync.Once

	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-stop:
			return
		case <-timer.C:
		}
		fn()

		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() { close(stop) })
	}
}
