package model

import (
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/rtaiter"
)

// MinimumSeparationVector bounds arrivals with an explicit prefix of
// minimum separations: the k-th arrival (k >= 2) is separated from the
// first by at least Dmin[k-2]. Beyond the explicit prefix, the model
// extrapolates by repeating the maximum gap observed over any two
// consecutive entries (including the initial gap from 0 to Dmin[0]).
type MinimumSeparationVector struct {
	dmin []duration.Duration
	gap  duration.Duration
}

// NewMinimumSeparationVector validates dmin is non-empty, strictly
// increasing, and holds only positive values.
func NewMinimumSeparationVector(dmin []duration.Duration) (*MinimumSeparationVector, error) {
	if len(dmin) == 0 {
		return nil, ErrEmptyMinSeparation
	}
	prev := duration.Duration(0)
	gap := duration.Duration(0)
	for i, d := range dmin {
		if d <= prev && i > 0 {
			return nil, ErrNonIncreasingMinSeparation
		}
		if d <= 0 {
			return nil, ErrNonIncreasingMinSeparation
		}
		if g := d - prev; g > gap {
			gap = g
		}
		prev = d
	}

	cp := make([]duration.Duration, len(dmin))
	copy(cp, dmin)
	return &MinimumSeparationVector{dmin: cp, gap: gap}, nil
}

// MaxCoveredNJobs returns the number of arrivals explicitly covered by the
// separation prefix (the first arrival plus one per Dmin entry).
func (m *MinimumSeparationVector) MaxCoveredNJobs() int { return len(m.dmin) + 1 }

// MaxCoveredDelta returns the largest Δ explicitly covered by the
// separation prefix, beyond which MaxArrivals extrapolates.
func (m *MinimumSeparationVector) MaxCoveredDelta() duration.Duration {
	return m.dmin[len(m.dmin)-1]
}

// MaxArrivals counts the first arrival (any delta > 0 admits it), every
// Dmin threshold crossed by delta, and extrapolates beyond the prefix by
// repeating the maximum observed gap.
func (m *MinimumSeparationVector) MaxArrivals(delta duration.Duration) int {
	if delta <= 0 {
		return 0
	}
	n := 1
	var last duration.Duration
	for _, d := range m.dmin {
		if delta <= d {
			return n
		}
		n++
		last = d
	}
	for delta > last+m.gap {
		last += m.gap
		n++
	}
	return n
}

// Steps yields 0, then each Dmin entry directly, then last+gap, last+2*gap,
// ... forever — the brute-force convention's inverse of the MaxArrivals
// thresholds above.
func (m *MinimumSeparationVector) Steps() rtaiter.Seq {
	return func(yield func(duration.Duration) bool) {
		if !yield(0) {
			return
		}
		for _, d := range m.dmin {
			if !yield(d) {
				return
			}
		}
		last := m.dmin[len(m.dmin)-1]
		for {
			last += m.gap
			if !yield(last) {
				return
			}
		}
	}
}

// AsArrivalCurvePrefix defaults to the explicitly covered horizon
// (MaxCoveredDelta), the last Δ for which the model needs no
// extrapolation.
func (m *MinimumSeparationVector) AsArrivalCurvePrefix(minHorizon duration.Duration) *ArrivalCurvePrefix {
	return buildPrefix(m.Steps(), minHorizon, m.MaxCoveredDelta())
}
