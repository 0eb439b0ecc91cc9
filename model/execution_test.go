package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/model"
)

func mustWCET(t *testing.T, c duration.Duration) duration.WCET {
	t.Helper()
	w, err := duration.NewWCET(c)
	require.NoError(t, err)
	return w
}

func TestFullyPreemptive_HasNoNonPreemptiveRegion(t *testing.T) {
	e, err := model.NewFullyPreemptive(mustWCET(t, 10))
	require.NoError(t, err)

	assert.Equal(t, duration.Duration(10), e.WCET().Duration())
	assert.Equal(t, duration.Duration(0), e.MaxNonPreemptive())
	assert.Equal(t, duration.Duration(0), e.LastNonPreemptive())
}

func TestFullyNonPreemptive_RegionEqualsWCET(t *testing.T) {
	e, err := model.NewFullyNonPreemptive(mustWCET(t, 10))
	require.NoError(t, err)

	assert.Equal(t, duration.Duration(10), e.MaxNonPreemptive())
	assert.Equal(t, duration.Duration(10), e.LastNonPreemptive())
}

func TestFloatingNonPreemptive_LastEqualsMax(t *testing.T) {
	e, err := model.NewFloatingNonPreemptive(mustWCET(t, 10), 4)
	require.NoError(t, err)

	assert.Equal(t, duration.Duration(4), e.MaxNonPreemptive())
	assert.Equal(t, duration.Duration(4), e.LastNonPreemptive())
}

func TestFloatingNonPreemptive_RejectsOversizedRegion(t *testing.T) {
	_, err := model.NewFloatingNonPreemptive(mustWCET(t, 10), 0)
	assert.ErrorIs(t, err, model.ErrNonPositiveNPS)

	_, err = model.NewFloatingNonPreemptive(mustWCET(t, 10), 11)
	assert.ErrorIs(t, err, model.ErrNPSExceedsWCET)
}

func TestLimitedPreemptive_DistinctMaxAndLast(t *testing.T) {
	e, err := model.NewLimitedPreemptive(mustWCET(t, 10), 4, 2)
	require.NoError(t, err)

	assert.Equal(t, duration.Duration(4), e.MaxNonPreemptive())
	assert.Equal(t, duration.Duration(2), e.LastNonPreemptive())
}

func TestLimitedPreemptive_RejectsLastExceedingMax(t *testing.T) {
	_, err := model.NewLimitedPreemptive(mustWCET(t, 10), 4, 5)
	assert.ErrorIs(t, err, model.ErrLastNPSExceedsMax)
}
