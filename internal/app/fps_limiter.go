package app

import (
	"runtime"
	"time"

	"glscene/internal/config"
)

const (
	// idleFPS caps a minimised window that has nothing to show.
	idleFPS = 30

	// spinWindow is the tail of each wait spent polling the clock, since
	// time.Sleep tends to overshoot by about this much.
	spinWindow = 200 * time.Microsecond
)

// FPSLimiter paces the frame loop to config.GetFPSLimit frames per second.
// Deadlines advance by whole frame intervals so short sleeps do not drift.
type FPSLimiter struct {
	deadline time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewFPSLimiter returns a limiter on the wall clock.
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{now: time.Now, sleep: time.Sleep}
}

// frameInterval is the target frame duration, 0 for uncapped.
func frameInterval(limit int, idle bool) time.Duration {
	if idle && (limit <= 0 || limit > idleFPS) {
		limit = idleFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the current frame's deadline. idle applies the
// minimised-window cap on top of the configured one.
func (f *FPSLimiter) Wait(idle bool) {
	interval := frameInterval(config.GetFPSLimit(), idle)
	if interval == 0 {
		f.deadline = time.Time{}
		return
	}

	now := f.now()
	switch {
	case f.deadline.IsZero():
		f.deadline = now.Add(interval)
	case now.Sub(f.deadline) > interval:
		// More than a frame behind, e.g. after a window drag. Start over
		// instead of rushing frames to catch up.
		f.deadline = now.Add(interval)
	default:
		f.deadline = f.deadline.Add(interval)
	}

	f.sleepUntil(f.deadline)
}

func (f *FPSLimiter) sleepUntil(deadline time.Time) {
	if d := deadline.Sub(f.now()) - spinWindow; d > 0 {
		f.sleep(d)
	}
	for f.now().Before(deadline) {
		runtime.Gosched()
	}
}
