package analysis

import (
	"iter"

	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/rtaiter"
)

// SparseSearchSpace truncates a strictly increasing, lazily enumerated
// stream of points to those strictly less than upperBound, per spec §4.8.
// It reports (nil, false) when points itself yields nothing — "no
// analysis possible at this level" — and (points, true) otherwise, even
// when every point happens to be at or beyond upperBound (an empty but
// found search space).
func SparseSearchSpace(points rtaiter.Seq, upperBound duration.Duration) ([]duration.Duration, bool) {
	next, stop := iter.Pull(points)
	defer stop()

	first, ok := next()
	if !ok {
		return nil, false
	}

	out := make([]duration.Duration, 0, 8)
	for ok && first < upperBound {
		out = append(out, first)
		first, ok = next()
	}
	return out, true
}
