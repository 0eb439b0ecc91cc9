package edf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rta/analysis/edf"
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/model"
)

func mustWCET(t *testing.T, c duration.Duration) duration.WCET {
	t.Helper()
	w, err := duration.NewWCET(c)
	require.NoError(t, err)
	return w
}

// scenario3 builds spec §8 scenario 3: τ_u = Periodic(5)/WCET2/deadline10,
// τ_lo = Periodic(20)/WCET4 (non-preemptive)/deadline12, under an ideal
// processor.
func scenario3(t *testing.T) (model.TaskSet, *model.Task, model.SupplyModel) {
	t.Helper()

	uArrivals, err := model.NewPeriodic(5)
	require.NoError(t, err)
	uExec, err := model.NewFullyPreemptive(mustWCET(t, 2))
	require.NoError(t, err)
	uDeadline, err := duration.NewDeadline(10)
	require.NoError(t, err)
	tua := model.NewTask(uArrivals, uExec, model.WithDeadline(uDeadline))

	loArrivals, err := model.NewPeriodic(20)
	require.NoError(t, err)
	loExec, err := model.NewFullyNonPreemptive(mustWCET(t, 4))
	require.NoError(t, err)
	loDeadline, err := duration.NewDeadline(12)
	require.NoError(t, err)
	lo := model.NewTask(loArrivals, loExec, model.WithDeadline(loDeadline))

	ts := model.NewTaskSet(tua, lo)
	supply, err := model.NewIdealProcessor(1)
	require.NoError(t, err)
	return ts, tua, supply
}

func TestBusyWindowBoundNPS_MatchesWorkedScenario(t *testing.T) {
	ts, tua, _ := scenario3(t)
	assert.Equal(t, duration.Duration(5), edf.BusyWindowBoundNPS(ts, tua))
}

func TestBusyWindowBoundRBF_MatchesWorkedScenario(t *testing.T) {
	ts, _, supply := scenario3(t)
	rbf, ok := edf.BusyWindowBoundRBF(ts, supply)
	require.True(t, ok)
	assert.Equal(t, duration.Duration(8), rbf)
}

func TestBusyWindowBound_IsMaxOfNPSAndRBF(t *testing.T) {
	ts, tua, supply := scenario3(t)
	bw, ok := edf.BusyWindowBound(ts, tua, supply)
	require.True(t, ok)
	assert.Equal(t, duration.Duration(8), bw)
}

func TestBlockingBoundSteps_MatchesWorkedScenario(t *testing.T) {
	ts, tua, _ := scenario3(t)
	var got []duration.Duration
	for v := range edf.BlockingBoundSteps(ts, tua) {
		got = append(got, v)
	}
	assert.Equal(t, []duration.Duration{2}, got)
}

func TestSearchSpace_MatchesWorkedScenario(t *testing.T) {
	ts, tua, supply := scenario3(t)
	space, ok := edf.SearchSpace(ts, tua, supply)
	require.True(t, ok)
	assert.Equal(t, []duration.Duration{0, 2, 5}, space)
}

// TestRTA_MatchesPublishedMaximum mirrors spec §8 scenario 3's published
// response_time_bound of 5: offset 0 has no backlog ahead of tua and lo's
// deadline is not yet exceeded, so its demand is just tua's own WCET (2)
// plus the blocking bound at offset 0 (3); offsets 2 and 5 both resolve to
// smaller response times once lo's interference is capped by its
// demand-bound function, so 5 is the maximum across the whole search space.
func TestRTA_MatchesPublishedMaximum(t *testing.T) {
	ts, tua, supply := scenario3(t)
	sol := edf.RTA(ts, tua, supply)
	require.True(t, sol.BoundFound())

	rtb, ok := sol.ResponseTimeBound()
	require.True(t, ok)
	assert.Equal(t, duration.Duration(5), rtb)

	want := map[duration.Duration]duration.Duration{0: 5, 2: 2, 5: 3}
	for _, p := range sol.SearchSpace {
		require.NotNil(t, p.ResponseTime)
		assert.Equal(t, want[p.Offset], *p.ResponseTime, "offset %d", p.Offset)
	}
}

func TestBlockingBound_ExcludesTuaAndShorterDeadlines(t *testing.T) {
	ts, tua, _ := scenario3(t)
	assert.Equal(t, duration.Duration(3), edf.BlockingBound(ts, tua, 0))
	assert.Equal(t, duration.Duration(0), edf.BlockingBound(ts, tua, 2))
}
