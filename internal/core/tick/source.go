package tick

import (
	"sync"
	"time"
)

// DefaultInterval is the cadence used when none is configured.
const DefaultInterval = 10 * time.Millisecond

// Config contains runtime options for Source.
type Config struct {
	Interval time.Duration
}

// Source delivers timestamps to a sink on a fixed interval while started.
type Source struct {
	mu       sync.Mutex
	interval time.Duration
	sink     func(time.Time)
	stopCh   chan struct{}
	running  bool
}

// New creates a stopped Source.
func New(config Config, sink func(time.Time)) *Source {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	return &Source{
		interval: config.Interval,
		sink:     sink,
	}
}

// Interval returns the configured cadence.
func (source *Source) Interval() time.Duration {
	return source.interval
}

// Running reports whether ticks are being delivered.
func (source *Source) Running() bool {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.running
}

// Start launches the ticking loop. Starting a running source is a no-op.
func (source *Source) Start() {
	source.mu.Lock()
	defer source.mu.Unlock()
	if source.running {
		return
	}
	source.running = true
	source.stopCh = make(chan struct{})
	go source.run(source.stopCh)
}

// Stop terminates the ticking loop. A tick already handed to the sink may
// still be in flight when Stop returns.
func (source *Source) Stop() {
	source.mu.Lock()
	defer source.mu.Unlock()
	if !source.running {
		return
	}
	source.running = false
	close(source.stopCh)
}

func (source *Source) run(stopCh chan struct{}) {
	ticker := time.NewTicker(source.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			source.sink(tickTime)
		}
	}
}
