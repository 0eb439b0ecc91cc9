package model

import (
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/rtaiter"
)

// PeriodicWithJitter releases jobs periodically with Period, but each
// release may be delayed by up to Jitter relative to its nominal instant —
// the worst case clusters two releases as close as Period-Jitter apart.
type PeriodicWithJitter struct {
	period duration.Duration
	jitter duration.Duration
}

// NewPeriodicWithJitter validates period > 0 and jitter >= 0.
func NewPeriodicWithJitter(period, jitter duration.Duration) (*PeriodicWithJitter, error) {
	if period <= 0 {
		return nil, ErrNonPositivePeriod
	}
	if jitter < 0 {
		return nil, ErrNegativeJitter
	}
	return &PeriodicWithJitter{period: period, jitter: jitter}, nil
}

// Period returns the nominal inter-arrival time.
func (p *PeriodicWithJitter) Period() duration.Duration { return p.period }

// Jitter returns the maximum release delay.
func (p *PeriodicWithJitter) Jitter() duration.Duration { return p.jitter }

// MaxArrivals returns ceil((delta + Jitter) / Period) for delta > 0, else 0.
func (p *PeriodicWithJitter) MaxArrivals(delta duration.Duration) int {
	if delta <= 0 {
		return 0
	}
	return int((delta + p.jitter + p.period - 1) / p.period)
}

// Steps yields 0, then m*Period-Jitter for m = 1, 2, ... skipping any
// non-positive or non-increasing candidates (large jitter can push the
// first few below the preceding step).
func (p *PeriodicWithJitter) Steps() rtaiter.Seq {
	return func(yield func(duration.Duration) bool) {
		if !yield(0) {
			return
		}
		last := duration.Duration(0)
		for m := duration.Duration(1); ; m++ {
			v := m*p.period - p.jitter
			if v > last {
				if !yield(v) {
					return
				}
				last = v
			}
		}
	}
}

// AsArrivalCurvePrefix defaults to 10 periods, per spec: jitter gives this
// model an unbounded-looking initial transient, so a short single-period
// window would not capture its steady-state behavior faithfully.
func (p *PeriodicWithJitter) AsArrivalCurvePrefix(minHorizon duration.Duration) *ArrivalCurvePrefix {
	prefix := buildPrefix(p.Steps(), minHorizon, 10*p.period)
	// A jitter of at least one period lets a single step admit several
	// releases at once, so each step's count is read from MaxArrivals
	// instead of growing by one per step.
	for i := range prefix.steps {
		prefix.steps[i].N = p.MaxArrivals(prefix.steps[i].Delta)
	}
	return prefix
}
