package game

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTimerSchedulerFiresAndStops(t *testing.T) {
	var count atomic.Int32
	fired := make(chan struct{}, 16)
	cancel := TimerScheduler{}.Schedule(time.Millisecond, 2*time.Millisecond, func() {
		count.Add(1)
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	for i := 0; i < 3; i++ {
		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d never fired", i)
		}
	}

	cancel()
	cancel()
	time.Sleep(10 * time.Millisecond)
	settled := count.Load()
	time.Sleep(20 * time.Millisecond)
	if got := count.Load(); got != settled {
		t.Errorf("ticks continued after cancel: %d -> %d", settled, got)
	}
}

func TestTimerSchedulerCancelBeforeDelay(t *testing.T) {
	var count atomic.Int32
	cancel := TimerScheduler{}.Schedule(20*time.Millisecond, time.Millisecond, func() { count.Add(1) })
	cancel()
	time.Sleep(40 * time.Millisecond)
	if count.Load() != 0 {
		t.Errorf("fired %d times after early cancel", count.Load())
	}
}

func TestControllerWithTimerScheduler(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	clearFruit(e)
	moved := make(chan View, 4)
	c := NewController(e, 5*time.Millisecond, time.Millisecond,
		WithListener(ListenerFuncs{Tick: func(v View) {
			select {
			case moved <- v:
			default:
			}
		}}))
	defer c.Close()

	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	select {
	case v := <-moved:
		if v.Steps < 1 {
			t.Errorf("steps = %d", v.Steps)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no tick from the timer scheduler")
	}
	c.Pause()
}
