package clock

import "time"

// Clock is a single countdown timer driven by externally supplied timestamps.
type Clock struct {
	limit     time.Duration
	remaining time.Duration
	lastTick  time.Time
	running   bool
}

// New creates a stopped clock holding the full time limit.
func New(limit time.Duration) *Clock {
	if limit < 0 {
		limit = 0
	}
	return &Clock{
		limit:     limit,
		remaining: limit,
	}
}

// Toggle flips the running flag. Starting resets the tick reference to now.
func (clock *Clock) Toggle(now time.Time) {
	if clock.running {
		clock.Stop()
		return
	}
	clock.Start(now)
}

// Start runs the clock from now. A running clock is left untouched.
func (clock *Clock) Start(now time.Time) {
	if clock.running {
		return
	}
	clock.running = true
	clock.lastTick = now
}

// Stop halts the clock.
func (clock *Clock) Stop() {
	clock.running = false
}

// Pause is a one-way stop requested by the user.
func (clock *Clock) Pause() {
	clock.Stop()
}

// Tick subtracts the time elapsed since the previous tick.
// A timestamp earlier than the previous one only resynchronizes the reference.
func (clock *Clock) Tick(now time.Time) {
	if !clock.running {
		return
	}
	if now.Before(clock.lastTick) {
		clock.lastTick = now
		return
	}

	delta := now.Sub(clock.lastTick)
	clock.lastTick = now
	if delta >= clock.remaining {
		clock.remaining = 0
		return
	}
	clock.remaining -= delta
}

// Remaining returns the time left on the clock.
func (clock *Clock) Remaining() time.Duration {
	return clock.remaining
}

// Limit returns the configured time limit.
func (clock *Clock) Limit() time.Duration {
	return clock.limit
}

// Running reports whether the clock is counting down.
func (clock *Clock) Running() bool {
	return clock.running
}

// Expired reports whether a clock with a time limit has run out.
func (clock *Clock) Expired() bool {
	return clock.limit > 0 && clock.remaining == 0
}
