package tick

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSourceDefaultsInterval(t *testing.T) {
	source := New(Config{}, func(time.Time) {})
	require.Equal(t, DefaultInterval, source.Interval())
	require.False(t, source.Running())
}

func TestSourceDeliversTicksUntilStopped(t *testing.T) {
	var count atomic.Int64
	var last atomic.Int64
	source := New(Config{Interval: time.Millisecond}, func(now time.Time) {
		count.Add(1)
		last.Store(now.UnixNano())
	})

	source.Start()
	source.Start()
	require.True(t, source.Running())
	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)

	source.Stop()
	source.Stop()
	require.False(t, source.Running())
	require.NotZero(t, last.Load())

	time.Sleep(5 * time.Millisecond)
	settled := count.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, settled, count.Load())
}

func TestSourceRestarts(t *testing.T) {
	var count atomic.Int64
	source := New(Config{Interval: time.Millisecond}, func(time.Time) { count.Add(1) })

	source.Start()
	require.Eventually(t, func() bool { return count.Load() >= 1 }, time.Second, time.Millisecond)
	source.Stop()

	time.Sleep(5 * time.Millisecond)
	before := count.Load()
	source.Start()
	defer source.Stop()
	require.Eventually(t, func() bool { return count.Load() > before }, time.Second, time.Millisecond)
}
