package rtaiter_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/rtaiter"
)

func collect(seq rtaiter.Seq, limit int) []duration.Duration {
	out := make([]duration.Duration, 0, limit)
	for v := range seq {
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}

func fromSlice(values []duration.Duration) rtaiter.Seq {
	return func(yield func(duration.Duration) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func TestMergeSortedUnique_DeduplicatesSortedStreams(t *testing.T) {
	a := fromSlice([]duration.Duration{1, 3, 5, 7})
	b := fromSlice([]duration.Duration{2, 3, 4, 6, 8})
	c := fromSlice([]duration.Duration{1, 5, 8})

	got := collect(rtaiter.MergeSortedUnique(a, b, c), 8)
	assert.Equal(t, []duration.Duration{1, 2, 3, 4, 5, 6, 7, 8}, got)
}

func TestMergeSortedUnique_StopsEarly(t *testing.T) {
	infinite := func(yield func(duration.Duration) bool) {
		for d := duration.Duration(0); ; d += 2 {
			if !yield(d) {
				return
			}
		}
	}

	got := collect(rtaiter.MergeSortedUnique(infinite), 3)
	assert.Equal(t, []duration.Duration{0, 2, 4}, got)
}

func TestBruteForceSteps_FindsChangePoints(t *testing.T) {
	stepFn := func(d duration.Duration) duration.Duration { return d / 3 }

	got := slices.Collect(rtaiter.BruteForceSteps(stepFn, 9))
	assert.Equal(t, []duration.Duration{2, 5, 8}, got)
}

func TestBruteForceSteps_CanYieldSuccessor(t *testing.T) {
	stepFn := func(d duration.Duration) duration.Duration { return d / 4 }

	got := slices.Collect(rtaiter.BruteForceStepsSucc(stepFn, 10))
	assert.Equal(t, []duration.Duration{4, 8}, got)
}
