package fp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rta/analysis/fp"
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/model"
)

func mustWCET(t *testing.T, c duration.Duration) duration.WCET {
	t.Helper()
	w, err := duration.NewWCET(c)
	require.NoError(t, err)
	return w
}

// scenario2 builds spec §8 scenario 2: a high-priority fully-preemptive
// task and a low-priority fully-non-preemptive blocker, under an ideal
// processor.
func scenario2(t *testing.T) (model.TaskSet, *model.Task, model.SupplyModel) {
	t.Helper()

	hiArrivals, err := model.NewPeriodic(4)
	require.NoError(t, err)
	hiExec, err := model.NewFullyPreemptive(mustWCET(t, 1))
	require.NoError(t, err)
	hi := model.NewTask(hiArrivals, hiExec, model.WithPriority(duration.NewPriority(10)))

	loArrivals, err := model.NewPeriodic(10)
	require.NoError(t, err)
	loExec, err := model.NewFullyNonPreemptive(mustWCET(t, 3))
	require.NoError(t, err)
	lo := model.NewTask(loArrivals, loExec, model.WithPriority(duration.NewPriority(1)))

	ts := model.NewTaskSet(hi, lo)
	supply, err := model.NewIdealProcessor(1)
	require.NoError(t, err)
	return ts, hi, supply
}

func TestBlockingBound_LowerPriorityNonPreemptiveBlocker(t *testing.T) {
	ts, hi, _ := scenario2(t)
	assert.Equal(t, duration.Duration(2), fp.BlockingBound(ts, hi))
}

func TestRTA_MatchesWorkedScenario(t *testing.T) {
	ts, hi, supply := scenario2(t)

	sol := fp.RTA(ts, hi, supply)
	require.True(t, sol.BoundFound())
	require.NotNil(t, sol.BusyWindowBound)
	assert.Equal(t, duration.Duration(3), *sol.BusyWindowBound)

	require.Len(t, sol.SearchSpace, 1)
	assert.Equal(t, duration.Duration(0), sol.SearchSpace[0].Offset)

	rtb, ok := sol.ResponseTimeBound()
	require.True(t, ok)
	assert.Equal(t, duration.Duration(3), rtb)
}

func TestBlockingBound_NoLowerPriorityTask(t *testing.T) {
	arrivals, err := model.NewPeriodic(5)
	require.NoError(t, err)
	exec, err := model.NewFullyPreemptive(mustWCET(t, 1))
	require.NoError(t, err)
	solo := model.NewTask(arrivals, exec, model.WithPriority(duration.NewPriority(1)))
	ts := model.NewTaskSet(solo)

	assert.Equal(t, duration.Duration(0), fp.BlockingBound(ts, solo))
}

func TestWithBlockingBound_OverridesComputedValue(t *testing.T) {
	ts, hi, supply := scenario2(t)

	bw, ok := fp.BusyWindowBound(ts, hi, supply, fp.WithBlockingBound(0))
	require.True(t, ok)
	assert.Equal(t, duration.Duration(1), bw)
}
