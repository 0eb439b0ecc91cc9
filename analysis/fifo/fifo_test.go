package fifo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rta/analysis/fifo"
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/model"
)

func mustWCET(t *testing.T, c duration.Duration) duration.WCET {
	t.Helper()
	w, err := duration.NewWCET(c)
	require.NoError(t, err)
	return w
}

// TestRTA_IdealSupplySingleTask mirrors spec §8 scenario 1: a single
// Periodic(3)/WCET(1) task under an ideal processor. The busy window and
// response time both converge at 1.
func TestRTA_IdealSupplySingleTask(t *testing.T) {
	period, err := model.NewPeriodic(3)
	require.NoError(t, err)
	exec, err := model.NewFullyPreemptive(mustWCET(t, 1))
	require.NoError(t, err)
	task := model.NewTask(period, exec)
	ts := model.NewTaskSet(task)

	supply, err := model.NewIdealProcessor(1)
	require.NoError(t, err)

	sol := fifo.RTA(ts, supply)
	require.True(t, sol.BoundFound())
	require.NotNil(t, sol.BusyWindowBound)
	assert.Equal(t, duration.Duration(1), *sol.BusyWindowBound)

	rtb, ok := sol.ResponseTimeBound()
	require.True(t, ok)
	assert.Equal(t, duration.Duration(1), rtb)

	require.Len(t, sol.SearchSpace, 1)
	assert.Equal(t, duration.Duration(0), sol.SearchSpace[0].Offset)
}

// TestBusyWindowBound_RateDelaySupply mirrors spec §8 scenario 4: the same
// task under a RateDelayModel(period=100, allocation=90, delay=25). The
// busy-window fixed point (lhs identity, rhs supply.Inverse(total_request))
// converges to 41, traced 1 -> 27 -> 35 -> 39 -> 40 -> 41.
func TestBusyWindowBound_RateDelaySupply(t *testing.T) {
	period, err := model.NewPeriodic(3)
	require.NoError(t, err)
	exec, err := model.NewFullyPreemptive(mustWCET(t, 1))
	require.NoError(t, err)
	task := model.NewTask(period, exec)
	ts := model.NewTaskSet(task)

	supply, err := model.NewRateDelayModel(100, 90, 25)
	require.NoError(t, err)

	bw, ok := fifo.BusyWindowBound(ts, supply)
	require.True(t, ok)
	assert.Equal(t, duration.Duration(41), bw)

	space, ok := fifo.SearchSpace(ts, supply)
	require.True(t, ok)
	want := make([]duration.Duration, 0, 14)
	for d := duration.Duration(0); d < 41; d += 3 {
		want = append(want, d)
	}
	assert.Equal(t, want, space)
}

// TestRTA_RateDelaySupplyMatchesPublishedMaximum mirrors spec §8 scenario
// 4's published response_time_bound: under the RateDelayModel, the job
// released at offset 0 has no backlog ahead of it, so its completion is
// supply.Inverse(WCET) = 25 + ceil(1*100/90) = 27 — the maximum across the
// whole search space, since every later offset starts with strictly less
// backlog relative to its own release.
func TestRTA_RateDelaySupplyMatchesPublishedMaximum(t *testing.T) {
	period, err := model.NewPeriodic(3)
	require.NoError(t, err)
	exec, err := model.NewFullyPreemptive(mustWCET(t, 1))
	require.NoError(t, err)
	task := model.NewTask(period, exec)
	ts := model.NewTaskSet(task)

	supply, err := model.NewRateDelayModel(100, 90, 25)
	require.NoError(t, err)

	sol := fifo.RTA(ts, supply)
	require.True(t, sol.BoundFound())

	rtb, ok := sol.ResponseTimeBound()
	require.True(t, ok)
	assert.Equal(t, duration.Duration(27), rtb)

	require.NotNil(t, sol.SearchSpace[0].ResponseTime)
	assert.Equal(t, duration.Duration(27), *sol.SearchSpace[0].ResponseTime)
}

func TestPointsOfInterest_MergesAllTaskArrivals(t *testing.T) {
	p3, err := model.NewPeriodic(3)
	require.NoError(t, err)
	p5, err := model.NewPeriodic(5)
	require.NoError(t, err)
	exec, err := model.NewFullyPreemptive(mustWCET(t, 1))
	require.NoError(t, err)
	ts := model.NewTaskSet(model.NewTask(p3, exec), model.NewTask(p5, exec))

	count := 0
	for v := range fifo.PointsOfInterest(ts) {
		_ = v
		count++
		if count == 6 {
			break
		}
	}
	assert.Equal(t, 6, count)
}
