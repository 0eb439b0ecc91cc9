package model

import (
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/rtaiter"
)

// Periodic releases exactly one job every Period, starting at time 0.
type Periodic struct {
	period duration.Duration
}

// NewPeriodic validates period > 0 and constructs a Periodic arrival model.
func NewPeriodic(period duration.Duration) (*Periodic, error) {
	if period <= 0 {
		return nil, ErrNonPositivePeriod
	}
	return &Periodic{period: period}, nil
}

// Period returns the inter-arrival time.
func (p *Periodic) Period() duration.Duration { return p.period }

// MaxArrivals returns ceil(delta / Period) for delta > 0, else 0.
func (p *Periodic) MaxArrivals(delta duration.Duration) int {
	if delta <= 0 {
		return 0
	}
	return int((delta + p.period - 1) / p.period)
}

// Steps yields 0, Period, 2*Period, ... forever.
func (p *Periodic) Steps() rtaiter.Seq {
	return func(yield func(duration.Duration) bool) {
		for k := duration.Duration(0); ; k += p.period {
			if !yield(k) {
				return
			}
		}
	}
}

// AsArrivalCurvePrefix defaults to a single period, enough to capture the
// model's fully repeating shape.
func (p *Periodic) AsArrivalCurvePrefix(minHorizon duration.Duration) *ArrivalCurvePrefix {
	return buildPrefix(p.Steps(), minHorizon, p.period)
}

// Sporadic releases jobs no more often than once every MinInterArrival,
// with no assumption of regularity beyond that lower bound — the same
// counting bound as Periodic, since the worst case is back-to-back minimal
// separations.
type Sporadic struct {
	minInterArrival duration.Duration
}

// NewSporadic validates minInterArrival > 0.
func NewSporadic(minInterArrival duration.Duration) (*Sporadic, error) {
	if minInterArrival <= 0 {
		return nil, ErrNonPositivePeriod
	}
	return &Sporadic{minInterArrival: minInterArrival}, nil
}

// MinInterArrival returns the minimum time between consecutive releases.
func (s *Sporadic) MinInterArrival() duration.Duration { return s.minInterArrival }

// MaxArrivals returns ceil(delta / MinInterArrival) for delta > 0, else 0.
func (s *Sporadic) MaxArrivals(delta duration.Duration) int {
	if delta <= 0 {
		return 0
	}
	return int((delta + s.minInterArrival - 1) / s.minInterArrival)
}

// Steps yields 0, MinInterArrival, 2*MinInterArrival, ... forever.
func (s *Sporadic) Steps() rtaiter.Seq {
	return func(yield func(duration.Duration) bool) {
		for k := duration.Duration(0); ; k += s.minInterArrival {
			if !yield(k) {
				return
			}
		}
	}
}

// AsArrivalCurvePrefix defaults to a single inter-arrival period.
func (s *Sporadic) AsArrivalCurvePrefix(minHorizon duration.Duration) *ArrivalCurvePrefix {
	return buildPrefix(s.Steps(), minHorizon, s.minInterArrival)
}
