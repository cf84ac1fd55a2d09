package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func runningIndexes(pane *Pane) []int {
	var indexes []int
	for index := 0; index < pane.Len(); index++ {
		if pane.Clock(index).Running() {
			indexes = append(indexes, index)
		}
	}
	return indexes
}

func TestNewPane(t *testing.T) {
	pane := NewPane([]time.Duration{time.Minute, 2 * time.Minute})
	require.Equal(t, 2, pane.Len())
	require.Equal(t, 1, pane.Active())
	require.Empty(t, runningIndexes(pane))

	empty := NewPane(nil)
	require.Equal(t, 1, empty.Len())
	require.Equal(t, 0, empty.Active())

	crowded := NewPane([]time.Duration{1, 2, 3, 4, 5, 6})
	require.Equal(t, MaxClocks, crowded.Len())
	require.Equal(t, MaxClocks-1, crowded.Active())
}

func TestPaneToggleRotatesTwoClocks(t *testing.T) {
	pane := NewPane([]time.Duration{time.Minute, time.Minute})

	pane.Toggle(epoch)
	require.Equal(t, 0, pane.Active())
	require.Equal(t, []int{0}, runningIndexes(pane))

	pane.Toggle(epoch.Add(time.Second))
	require.Equal(t, 1, pane.Active())
	require.Equal(t, []int{1}, runningIndexes(pane))
}

func TestPaneToggleSingleClock(t *testing.T) {
	pane := NewPane([]time.Duration{time.Minute})

	pane.Toggle(epoch)
	require.Equal(t, 0, pane.Active())
	require.True(t, pane.Clock(0).Running())

	pane.Toggle(epoch.Add(time.Second))
	require.Equal(t, 0, pane.Active())
	require.False(t, pane.Clock(0).Running())
}

func TestPaneToggleCyclesFourClocks(t *testing.T) {
	pane := NewPane([]time.Duration{time.Minute, time.Minute, time.Minute, time.Minute})
	for _, want := range []int{0, 1, 2, 3, 0} {
		pane.Toggle(epoch)
		require.Equal(t, want, pane.Active())
		require.Equal(t, []int{want}, runningIndexes(pane))
	}
}

func TestPaneTickOnlyMovesActiveClock(t *testing.T) {
	pane := NewPane([]time.Duration{time.Minute, time.Minute})
	pane.Toggle(epoch)
	pane.Tick(epoch.Add(10 * time.Second))

	require.Equal(t, 50*time.Second, pane.Clock(0).Remaining())
	require.Equal(t, time.Minute, pane.Clock(1).Remaining())

	pane.Toggle(epoch.Add(10 * time.Second))
	pane.Tick(epoch.Add(15 * time.Second))
	require.Equal(t, 50*time.Second, pane.Clock(0).Remaining())
	require.Equal(t, 55*time.Second, pane.Clock(1).Remaining())
}

// Pause steps the active index back so the paused player's clock restarts on
// the next toggle. This mirrors observed behaviour rather than a documented
// product rule.
func TestPanePauseStepsActiveBack(t *testing.T) {
	pane := NewPane([]time.Duration{time.Minute, time.Minute})
	pane.Toggle(epoch)
	pane.Tick(epoch.Add(5 * time.Second))
	require.Equal(t, 0, pane.Active())

	pane.Pause()
	require.Equal(t, 1, pane.Active())
	require.Empty(t, runningIndexes(pane))
	require.Equal(t, 55*time.Second, pane.Clock(0).Remaining())

	pane.Toggle(epoch.Add(time.Minute))
	require.Equal(t, 0, pane.Active())
	require.Equal(t, []int{0}, runningIndexes(pane))

	pane.Tick(epoch.Add(time.Minute + time.Second))
	require.Equal(t, 54*time.Second, pane.Clock(0).Remaining())
}

func TestPanePauseSingleClock(t *testing.T) {
	pane := NewPane([]time.Duration{time.Minute})
	pane.Toggle(epoch)
	pane.Pause()
	require.Equal(t, 0, pane.Active())
	require.False(t, pane.Clock(0).Running())
}

func TestPaneResetMatchesConstruction(t *testing.T) {
	limits := []time.Duration{time.Minute, 2 * time.Minute, 3 * time.Minute}
	pane := NewPane(limits)
	pane.Toggle(epoch)
	pane.Tick(epoch.Add(10 * time.Second))
	pane.Toggle(epoch.Add(10 * time.Second))

	pane.Reset()
	require.Equal(t, NewPane(limits).Status(), pane.Status())
	require.Equal(t, 2, pane.Active())
	require.Empty(t, runningIndexes(pane))
}

func TestPaneStatus(t *testing.T) {
	pane := NewPane([]time.Duration{time.Second, time.Minute})
	pane.Toggle(epoch)
	pane.Tick(epoch.Add(2 * time.Second))

	statuses := pane.Status()
	require.Len(t, statuses, 2)
	require.Equal(t, Status{Index: 0, Remaining: 0, Limit: time.Second, Running: true, Expired: true, Active: true}, statuses[0])
	require.Equal(t, Status{Index: 1, Remaining: time.Minute, Limit: time.Minute}, statuses[1])
}
