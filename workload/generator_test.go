package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/model"
	"github.com/katalvlaran/rta/workload"
)

func TestGenerateTaskSets_ShapeAndBounds(t *testing.T) {
	sets := workload.GenerateTaskSets(workload.DefaultSeeds, workload.DefaultTaskSetsPerSeed, workload.DefaultTargetUtilization)
	require.Len(t, sets, len(workload.DefaultSeeds)*workload.DefaultTaskSetsPerSeed)

	for _, ts := range sets {
		require.GreaterOrEqual(t, len(ts), 2)
		require.LessOrEqual(t, len(ts), 10)
		for _, task := range ts {
			assert.Greater(t, task.Execution.WCET().Duration(), duration.Duration(0))
		}
	}
}

func TestGenerateTaskSets_DeterministicForFixedSeeds(t *testing.T) {
	seeds := []int64{42, 99}
	a := workload.GenerateTaskSets(seeds, 3, 0.6)
	b := workload.GenerateTaskSets(seeds, 3, 0.6)

	require.Len(t, a, 6)
	require.Len(t, b, 6)
	for i := range a {
		require.Equal(t, len(a[i]), len(b[i]))
		for j := range a[i] {
			assert.Equal(t, a[i][j].Execution.WCET(), b[i][j].Execution.WCET())

			da, errA := model.DeadlineOf(a[i][j])
			db, errB := model.DeadlineOf(b[i][j])
			require.NoError(t, errA)
			require.NoError(t, errB)
			assert.Equal(t, da, db)

			pa, errA := model.PriorityOf(a[i][j])
			pb, errB := model.PriorityOf(b[i][j])
			require.NoError(t, errA)
			require.NoError(t, errB)
			assert.Equal(t, pa, pb)
		}
	}
}

func TestGenerateTaskSets_DifferentSeedsDiverge(t *testing.T) {
	a := workload.GenerateTaskSets([]int64{1}, 1, 0.7)
	b := workload.GenerateTaskSets([]int64{2}, 1, 0.7)

	require.Len(t, a, 1)
	require.Len(t, b, 1)

	sameShape := len(a[0]) == len(b[0])
	sameWCET := sameShape
	if sameShape {
		for i := range a[0] {
			if a[0][i].Execution.WCET() != b[0][i].Execution.WCET() {
				sameWCET = false
				break
			}
		}
	}
	assert.False(t, sameShape && sameWCET, "different seeds should not produce identical task sets")
}
