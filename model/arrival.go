package model

import (
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/rtaiter"
)

// ArrivalModel bounds how many jobs of a task can arrive in any window of
// length Δ, and enumerates the Δ at which that bound increases.
//
// Steps follows the brute-force convention (rtaiter.BruteForceSteps): it
// yields Δ-1 for every Δ at which MaxArrivals jumps, starting from 0. This
// is the same convention used to build RequestBoundFunction's step
// enumerator and to feed points_of_interest.
type ArrivalModel interface {
	// MaxArrivals returns the maximum number of job releases possible in
	// any half-open window of length delta. MaxArrivals(d) == 0 for d <= 0.
	MaxArrivals(delta duration.Duration) int

	// Steps enumerates the Δ at which MaxArrivals increases, in the
	// brute-force convention, starting at 0 and strictly increasing.
	Steps() rtaiter.Seq

	// AsArrivalCurvePrefix materializes a finite (Δ, n) representation
	// covering at least minHorizon (models with an inherently unbounded
	// transient, like PeriodicWithJitter, fall back to their own default
	// when minHorizon is smaller).
	AsArrivalCurvePrefix(minHorizon duration.Duration) *ArrivalCurvePrefix
}

// buildPrefix derives an ArrivalCurvePrefix generically from any model's
// Steps sequence: the k-th yielded step value s corresponds to the
// (k+1)-th arrival, first observable at Δ = s+1 (the brute-force
// convention's inverse). This relation holds for Periodic, Sporadic and
// MinimumSeparationVector, whose every step admits exactly one more
// release, so their AsArrivalCurvePrefix implementations are thin wrappers
// around this helper with a model-specific default horizon.
// PeriodicWithJitter also uses it, then recounts each step's n from its
// own MaxArrivals.
func buildPrefix(steps rtaiter.Seq, minHorizon, defaultHorizon duration.Duration) *ArrivalCurvePrefix {
	horizon := defaultHorizon
	if minHorizon > horizon {
		horizon = minHorizon
	}
	if horizon < 1 {
		horizon = 1
	}

	var acSteps []ACStep
	n := 0
	for s := range steps {
		n++
		d := s + 1
		if d > horizon {
			break
		}
		acSteps = append(acSteps, ACStep{Delta: d, N: n})
	}
	if len(acSteps) == 0 {
		// The requested horizon is smaller than the first arrival; widen it
		// so the prefix always carries at least one observation.
		for s := range steps {
			horizon = s + 1
			acSteps = append(acSteps, ACStep{Delta: s + 1, N: 1})
			break
		}
	}

	prefix, err := NewArrivalCurvePrefix(horizon, acSteps)
	if err != nil {
		// buildPrefix only ever constructs well-formed, strictly increasing
		// steps derived from a valid model's Steps sequence.
		panic("model: internal invariant violated building arrival curve prefix: " + err.Error())
	}
	return prefix
}

// ACStep is one (Δ, n) observation of an arrival curve prefix: n is the
// maximum number of arrivals observed in some window of length Δ.
type ACStep struct {
	Delta duration.Duration
	N     int
}

// ArrivalCurvePrefix is an explicit, finite arrival curve: a strictly
// increasing list of (Δ, n) observations valid up to Horizon, beyond which
// the shape is assumed to repeat (MaxArrivals(Δ+Horizon) == MaxArrivals(Δ)
// + n_last).
type ArrivalCurvePrefix struct {
	horizon duration.Duration
	steps   []ACStep
}

// NewArrivalCurvePrefix validates and constructs an ArrivalCurvePrefix.
// steps must be non-empty and strictly increasing in both Delta and N, with
// the last Delta no greater than horizon.
func NewArrivalCurvePrefix(horizon duration.Duration, steps []ACStep) (*ArrivalCurvePrefix, error) {
	if horizon <= 0 {
		return nil, ErrNonPositiveHorizon
	}
	if len(steps) == 0 {
		return nil, ErrEmptyACSteps
	}
	prevDelta, prevN := duration.Duration(0), 0
	for i, s := range steps {
		if s.Delta <= 0 || s.N <= 0 {
			return nil, ErrNonIncreasingACSteps
		}
		if i > 0 && (s.Delta <= prevDelta || s.N <= prevN) {
			return nil, ErrNonIncreasingACSteps
		}
		if s.Delta > horizon {
			return nil, ErrACStepsExceedHorizon
		}
		prevDelta, prevN = s.Delta, s.N
	}

	cp := make([]ACStep, len(steps))
	copy(cp, steps)
	return &ArrivalCurvePrefix{horizon: horizon, steps: cp}, nil
}

// Horizon returns the Δ up to which the explicit steps are authoritative.
func (a *ArrivalCurvePrefix) Horizon() duration.Duration { return a.horizon }

func (a *ArrivalCurvePrefix) valueWithin(delta duration.Duration) int {
	n := 0
	for _, s := range a.steps {
		if s.Delta > delta {
			break
		}
		n = s.N
	}
	return n
}

// MaxArrivals implements ArrivalModel, extrapolating beyond Horizon by
// repeating the prefix's shape: each full Horizon adds the last observed n.
func (a *ArrivalCurvePrefix) MaxArrivals(delta duration.Duration) int {
	if delta <= 0 {
		return 0
	}
	lastN := a.steps[len(a.steps)-1].N
	reps := 0
	for delta > a.horizon {
		delta -= a.horizon
		reps++
	}
	return a.valueWithin(delta) + reps*lastN
}

// Steps implements ArrivalModel, replaying the prefix's shifted steps
// forever, once per repeated horizon.
func (a *ArrivalCurvePrefix) Steps() rtaiter.Seq {
	return func(yield func(duration.Duration) bool) {
		cycle := duration.Duration(0)
		for {
			for _, s := range a.steps {
				if !yield(cycle + s.Delta - 1) {
					return
				}
			}
			cycle += a.horizon
		}
	}
}

// AsArrivalCurvePrefix is the identity: a prefix is already in canonical
// form, regardless of the requested minHorizon.
func (a *ArrivalCurvePrefix) AsArrivalCurvePrefix(duration.Duration) *ArrivalCurvePrefix {
	return a
}
