package clock

import "time"

// MaxClocks bounds the number of clocks a Pane rotates through.
const MaxClocks = 4

// Status is a read-only snapshot of one clock in a Pane.
type Status struct {
	Index     int
	Remaining time.Duration
	Limit     time.Duration
	Running   bool
	Expired   bool
	Active    bool
}

// Pane rotates the turn among one to four clocks.
type Pane struct {
	limits []time.Duration
	clocks []*Clock
	active int
}

// NewPane creates a pane with one stopped clock per limit.
// The last clock starts as active so the first toggle hands the turn to clock 0.
func NewPane(limits []time.Duration) *Pane {
	if len(limits) == 0 {
		limits = []time.Duration{0}
	}
	if len(limits) > MaxClocks {
		limits = limits[:MaxClocks]
	}
	pane := &Pane{limits: append([]time.Duration(nil), limits...)}
	pane.Reset()
	return pane
}

// Reset discards every clock and rebuilds them from the configured limits.
func (pane *Pane) Reset() {
	pane.clocks = make([]*Clock, len(pane.limits))
	for index, limit := range pane.limits {
		pane.clocks[index] = New(limit)
	}
	pane.active = len(pane.clocks) - 1
}

// Len returns the number of clocks.
func (pane *Pane) Len() int {
	return len(pane.clocks)
}

// Active returns the index of the clock holding the turn.
func (pane *Pane) Active() int {
	return pane.active
}

// Clock returns the clock at index.
func (pane *Pane) Clock(index int) *Clock {
	return pane.clocks[index]
}

// Tick forwards the timestamp to every clock; only the running one moves.
func (pane *Pane) Tick(now time.Time) {
	for _, clock := range pane.clocks {
		clock.Tick(now)
	}
}

// Toggle passes the turn to the next clock. A lone clock is started or stopped.
func (pane *Pane) Toggle(now time.Time) {
	if len(pane.clocks) == 1 {
		pane.clocks[0].Toggle(now)
		return
	}
	pane.clocks[pane.active].Stop()
	pane.active = (pane.active + 1) % len(pane.clocks)
	pane.clocks[pane.active].Start(now)
}

// Pause stops the active clock. With several clocks the active index steps
// back by one, so the next toggle restarts the same clock.
func (pane *Pane) Pause() {
	pane.clocks[pane.active].Pause()
	if len(pane.clocks) > 1 {
		pane.active = (pane.active + len(pane.clocks) - 1) % len(pane.clocks)
	}
}

// Status returns a snapshot of every clock in index order.
func (pane *Pane) Status() []Status {
	statuses := make([]Status, len(pane.clocks))
	for index, clock := range pane.clocks {
		statuses[index] = Status{
			Index:     index,
			Remaining: clock.Remaining(),
			Limit:     clock.Limit(),
			Running:   clock.Running(),
			Expired:   clock.Expired(),
			Active:    index == pane.active,
		}
	}
	return statuses
}
