package duration_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rta/duration"
)

func TestNewWCET_RejectsNonPositive(t *testing.T) {
	_, err := duration.NewWCET(0)
	require.ErrorIs(t, err, duration.ErrNonPositiveWCET)

	_, err = duration.NewWCET(-1)
	require.ErrorIs(t, err, duration.ErrNonPositiveWCET)

	w, err := duration.NewWCET(3)
	require.NoError(t, err)
	assert.Equal(t, duration.Duration(3), w.Duration())
}

func TestNewDeadline_RejectsNegative(t *testing.T) {
	_, err := duration.NewDeadline(-1)
	require.ErrorIs(t, err, duration.ErrNegativeDeadline)

	d, err := duration.NewDeadline(0)
	require.NoError(t, err)
	assert.Equal(t, duration.Duration(0), d.Duration())
}

func TestPriority_HigherNumberWins(t *testing.T) {
	low := duration.NewPriority(1)
	high := duration.NewPriority(10)
	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, duration.Duration(5), duration.Max(5, 2))
	assert.Equal(t, duration.Duration(5), duration.Max(2, 5))
	assert.Equal(t, duration.Duration(2), duration.Min(5, 2))
	assert.Equal(t, duration.Duration(2), duration.Min(2, 5))
}

func TestErrorsAreDistinctSentinels(t *testing.T) {
	assert.False(t, errors.Is(duration.ErrNonPositiveWCET, duration.ErrNegativeDeadline))
}
