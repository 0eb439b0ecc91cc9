package rtaiter

import "github.com/katalvlaran/rta/duration"

// EvalFunc is any integer-valued function of Δ, used as the brute-force
// oracle's subject. Arrival/RBF/DBF/blocking functions all fit this shape
// once their counting result is reinterpreted as a Duration for comparison
// purposes; only ordering matters here, not units.
type EvalFunc func(duration.Duration) duration.Duration

// BruteForceSteps scans Δ from 1 upward and, whenever f(Δ) > f(Δ-1), yields
// Δ-1 — the offset immediately preceding the jump. This is the step-
// enumerator convention used throughout the engine: for an arrival model
// whose first possible release makes f(1) > f(0) = 0, the enumerator's
// first reported value is 0, matching spec §4.3's Δ₁ = 1 prefix convention
// once re-expressed as "the window length at which a release first
// becomes possible", offset by one.
//
// This is a test oracle only — correct but O(limit) per call — never used
// on the hot path. Real step functions expose closed-form enumerators.
func BruteForceSteps(f EvalFunc, limit duration.Duration) Seq {
	return func(yield func(duration.Duration) bool) {
		prev := f(0)
		for d := duration.Duration(1); d <= limit; d++ {
			v := f(d)
			if v > prev {
				if !yield(d - 1) {
					return
				}
			}
			prev = v
		}
	}
}

// BruteForceStepsSucc is BruteForceSteps with "yield successor" mode: it
// yields Δ itself (the offset at which the jump is first observed) rather
// than its predecessor, for steps that are thresholds rather than arrival
// offsets.
func BruteForceStepsSucc(f EvalFunc, limit duration.Duration) Seq {
	return func(yield func(duration.Duration) bool) {
		prev := f(0)
		for d := duration.Duration(1); d <= limit; d++ {
			v := f(d)
			if v > prev {
				if !yield(d) {
					return
				}
			}
			prev = v
		}
	}
}
