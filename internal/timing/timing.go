// Package timing provides the frame-rate limiter and gravity tick
// schedulers used by the game loop. All state is held in explicit
// owned objects so multiple game instances never interfere.
package timing

import "time"

// Trigger reports whether a periodic event is due. Consumers poll it
// once per loop iteration; it returns true at most once per interval.
type Trigger interface {
	Due() bool
}

// WallClock is a wall-clock Trigger that accumulates the leftover time
// beyond its interval across polls, so events fire at the correct
// average rate even when iteration latency varies.
type WallClock struct {
	interval time.Duration
	prev     time.Time
	rest     time.Duration
	now      func() time.Time
}

// NewWallClock creates a trigger that fires once per interval.
func NewWallClock(interval time.Duration) *WallClock {
	c := &WallClock{
		interval: interval,
		now:      time.Now,
	}
	c.prev = c.now()
	return c
}

// Due returns true when at least one interval has elapsed since the
// last firing, counting carried-over remainder time.
func (c *WallClock) Due() bool {
	curr := c.now()
	elapsed := curr.Sub(c.prev)
	rest := elapsed + c.rest - c.interval
	if rest > 0 {
		c.prev = curr
		c.rest = rest
		return true
	}
	return false
}

// TickCounter is a deterministic Trigger that fires every N polls.
// Used for tests and fixed-tick simulation where wall time is
// irrelevant.
type TickCounter struct {
	every int
	count int
}

// NewTickCounter creates a trigger that fires on every n-th Due call.
// n values below 1 are treated as 1 (fires every call).
func NewTickCounter(n int) *TickCounter {
	if n < 1 {
		n = 1
	}
	return &TickCounter{every: n}
}

// Due returns true on every n-th call.
func (t *TickCounter) Due() bool {
	t.count++
	if t.count >= t.every {
		t.count = 0
		return true
	}
	return false
}

// Limiter paces a loop to a target frame rate by sleeping away the
// remainder of each frame interval.
type Limiter struct {
	interval time.Duration
	prev     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewLimiter creates a limiter for the given frames-per-second rate.
func NewLimiter(fps float64) *Limiter {
	if fps <= 0 {
		fps = 15
	}
	l := &Limiter{
		interval: time.Duration(float64(time.Second) / fps),
		now:      time.Now,
		sleep:    time.Sleep,
	}
	l.prev = l.now()
	return l
}

// Wait sleeps until the current frame's interval has been used up.
// Time spent sleeping counts toward the next frame's elapsed time.
func (l *Limiter) Wait() {
	curr := l.now()
	elapsed := curr.Sub(l.prev)
	l.prev = curr
	if d := l.interval - elapsed; d > 0 {
		l.sleep(d)
	}
}
