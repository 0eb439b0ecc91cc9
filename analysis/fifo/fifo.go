package fifo

import (
	"github.com/katalvlaran/rta/analysis"
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/model"
	"github.com/katalvlaran/rta/rtaiter"
	"github.com/katalvlaran/rta/solve"
)

// config holds the optional knobs accepted by the FIFO driver, set via
// Option. Mirrors solve's own functional-option convention.
type config struct {
	horizon    duration.Duration
	hasHorizon bool
}

// Option configures a FIFO analysis call.
type Option func(*config)

// WithHorizon bounds the busy-window search. The per-offset response times
// are evaluated directly (see responseTimeAt) and are not bounded by it.
// Omit for an unbounded search.
func WithHorizon(horizon duration.Duration) Option {
	return func(c *config) { c.horizon = horizon; c.hasHorizon = true }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func solveOpts(seed duration.Duration, c config) []solve.Option {
	opts := []solve.Option{solve.WithSeed(seed)}
	if c.hasHorizon {
		opts = append(opts, solve.WithHorizon(c.horizon))
	}
	return opts
}

// totalRequest is the sum of every task's RequestBoundFunction in ts: the
// aggregate workload a FIFO queue must service, with no notion of
// priority.
func totalRequest(ts model.TaskSet) model.StepFunction {
	fns := make([]model.StepFunction, len(ts))
	for i, t := range ts {
		fns[i] = model.NewRequestBoundFunction(t.Execution.WCET(), t.Arrivals)
	}
	return model.Total(fns...)
}

func sumWCET(ts model.TaskSet) duration.Duration {
	var sum duration.Duration
	for _, t := range ts {
		sum += t.Execution.WCET().Duration()
	}
	return sum
}

// PointsOfInterest merges the arrival steps of every task in ts: per spec
// §4.7, the candidate offsets at which a FIFO critical instant can occur.
func PointsOfInterest(ts model.TaskSet) rtaiter.Seq {
	seqs := make([]rtaiter.Seq, len(ts))
	for i, t := range ts {
		seqs[i] = t.Arrivals.Steps()
	}
	return rtaiter.MergeSortedUnique(seqs...)
}

// BusyWindowBound solves the FIFO busy-window fixed point: the least L
// such that the supply guaranteed over a window of length L covers the
// total request bound of the whole task set evaluated at L. There is no
// blocking term — every task is equally eligible to run in arrival order.
//
// lhs is the identity and rhs inverts the accumulated demand back through
// the supply model (see model.SupplyModel.Inverse), rather than comparing
// supply_bound(x) to demand(x) directly: for a non-ideal supply (e.g.
// RateDelayModel) the latter stalls at its own seed and never converges.
func BusyWindowBound(ts model.TaskSet, supply model.SupplyModel, opts ...Option) (duration.Duration, bool) {
	c := newConfig(opts)
	total := totalRequest(ts)
	lhs := func(x duration.Duration) duration.Duration { return x }
	rhs := func(x duration.Duration) duration.Duration { return supply.Inverse(total.Eval(x)) }
	return solve.Inequality(lhs, rhs, solveOpts(sumWCET(ts), c)...)
}

// SearchSpace returns the offsets within the busy window worth probing for
// a response-time maximum, per spec §4.8.
func SearchSpace(ts model.TaskSet, supply model.SupplyModel, opts ...Option) ([]duration.Duration, bool) {
	bw, ok := BusyWindowBound(ts, supply, opts...)
	if !ok {
		return nil, false
	}
	return analysis.SparseSearchSpace(PointsOfInterest(ts), bw)
}

// responseTimeAt computes the worst-case completion time of a job released
// at offset, relative to its own release. Under FIFO a job is served
// strictly in arrival order, so nothing released after offset can push its
// completion any later: the backlog it must drain is exactly the demand
// already accumulated up to offset (total.Eval(offset), counting only
// strictly earlier arrivals — see model.Periodic's half-open convention)
// plus its own execution. That sum is inverted back through the supply
// model to find the absolute completion time, then offset is subtracted to
// get a response. Every task in ts is tried as "the job released here" and
// the worst is kept, since fifo.RTA designates no specific task under
// analysis and more than one task may share an arrival offset.
func responseTimeAt(ts model.TaskSet, offset duration.Duration, supply model.SupplyModel) duration.Duration {
	backlog := totalRequest(ts).Eval(offset)

	var worst duration.Duration
	for _, t := range ts {
		completion := supply.Inverse(backlog + t.Execution.WCET().Duration())
		if r := completion - offset; r > worst {
			worst = r
		}
	}
	return worst
}

// RTA computes the FIFO response-time-bound solution for a task set as a
// whole: one busy-window bound, one search space, and a uniform
// per-offset response time (see responseTimeAt). The returned Solution's
// Task field is nil — FIFO designates no specific task under analysis.
func RTA(ts model.TaskSet, supply model.SupplyModel, opts ...Option) analysis.Solution {
	bw, ok := BusyWindowBound(ts, supply, opts...)
	if !ok {
		return analysis.NoSearchSpaceFound(ts, nil)
	}

	offsets, found := analysis.SparseSearchSpace(PointsOfInterest(ts), bw)
	if !found {
		return analysis.NoSearchSpaceFound(ts, nil)
	}

	points := make([]analysis.SearchPoint, len(offsets))
	for i, off := range offsets {
		r := responseTimeAt(ts, off, supply)
		points[i] = analysis.SearchPoint{Offset: off, ResponseTime: &r}
	}
	return analysis.FromSearchSpace(ts, nil, bw, points)
}
