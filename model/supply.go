package model

import "github.com/katalvlaran/rta/duration"

// SupplyModel bounds the amount of processing capacity guaranteed to a
// task's partition in any window of length Δ. Unlike ArrivalModel, a
// supply model is only ever evaluated, never enumerated — it enters the
// fixed-point inequality (solve.Inequality) through Inverse on the rhs
// side, and is not a source of points of interest.
type SupplyModel interface {
	// SupplyBound returns the minimum guaranteed processing capacity over
	// any window of length delta. SupplyBound(d) == 0 for d <= 0.
	SupplyBound(delta duration.Duration) duration.Duration

	// Inverse returns the least delta for which SupplyBound(delta) >= work.
	// Inverse(0) == 0. Used internally by the busy-window fixed point to
	// convert an amount of accumulated demand back into an elapsed-time
	// window length — the busy window grows until the window's own length
	// covers the processing that window's demand requires.
	Inverse(work duration.Duration) duration.Duration
}

// IdealProcessor supplies exactly Δ units of processing in any window of
// length Δ: a dedicated, uninterrupted, full-speed processor.
//
// Speed is validated but otherwise reserved: uniform processor speed-up is
// not yet modeled (see spec Open Questions) and every caller implicitly
// assumes speed 1.
type IdealProcessor struct {
	speed int
}

// NewIdealProcessor validates speed > 0.
func NewIdealProcessor(speed int) (*IdealProcessor, error) {
	if speed <= 0 {
		return nil, ErrInvalidSpeed
	}
	return &IdealProcessor{speed: speed}, nil
}

// Speed returns the configured (currently unused) processor speed.
func (p *IdealProcessor) Speed() int { return p.speed }

// SupplyBound returns max(0, delta).
func (p *IdealProcessor) SupplyBound(delta duration.Duration) duration.Duration {
	if delta <= 0 {
		return 0
	}
	return delta
}

// Inverse is the identity for an ideal processor: supplying w units of
// work takes exactly w units of elapsed time.
func (p *IdealProcessor) Inverse(work duration.Duration) duration.Duration {
	if work <= 0 {
		return 0
	}
	return work
}

// RateDelayModel supplies processing at rate Allocation/Period after an
// initial blackout of Delay — the periodic-resource abstraction used for
// hierarchically scheduled or rate-limited partitions.
type RateDelayModel struct {
	period     duration.Duration
	allocation duration.Duration
	delay      duration.Duration
}

// NewRateDelayModel validates period >= 1, allocation in [1, period], and
// delay >= 0.
func NewRateDelayModel(period, allocation, delay duration.Duration) (*RateDelayModel, error) {
	if period < 1 {
		return nil, ErrInvalidRateDelayPeriod
	}
	if allocation < 1 || allocation > period {
		return nil, ErrInvalidRateDelayAllocation
	}
	if delay < 0 {
		return nil, ErrInvalidRateDelayDelay
	}
	return &RateDelayModel{period: period, allocation: allocation, delay: delay}, nil
}

// Period, Allocation, and Delay expose the model's parameters.
func (r *RateDelayModel) Period() duration.Duration     { return r.period }
func (r *RateDelayModel) Allocation() duration.Duration { return r.allocation }
func (r *RateDelayModel) Delay() duration.Duration      { return r.delay }

// SupplyBound returns floor(Allocation * (delta - Delay) / Period) for
// delta > Delay, else 0.
func (r *RateDelayModel) SupplyBound(delta duration.Duration) duration.Duration {
	if delta <= r.delay {
		return 0
	}
	num := int64(r.allocation) * int64(delta-r.delay)
	return duration.Duration(num / int64(r.period))
}

// Inverse returns Delay + ceil(work * Period / Allocation) for work > 0,
// else 0: the least delta with floor(Allocation*(delta-Delay)/Period) >=
// work, since floor(z) >= w (w integer) iff z >= w.
func (r *RateDelayModel) Inverse(work duration.Duration) duration.Duration {
	if work <= 0 {
		return 0
	}
	num := int64(work) * int64(r.period)
	den := int64(r.allocation)
	ceilDiv := (num + den - 1) / den
	return r.delay + duration.Duration(ceilDiv)
}
