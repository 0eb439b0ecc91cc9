package fp

import (
	"github.com/katalvlaran/rta/analysis"
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/model"
	"github.com/katalvlaran/rta/rtaiter"
	"github.com/katalvlaran/rta/solve"
)

// config holds the optional knobs accepted by the FP driver.
type config struct {
	horizon             duration.Duration
	hasHorizon          bool
	blockingBound       duration.Duration
	hasBlockingOverride bool
}

// Option configures an FP analysis call.
type Option func(*config)

// WithHorizon bounds the busy-window search and every per-offset
// response-time fixed point. Omit for an unbounded search.
func WithHorizon(horizon duration.Duration) Option {
	return func(c *config) { c.horizon = horizon; c.hasHorizon = true }
}

// WithBlockingBound overrides the computed priority-inversion bound B_FP
// with a caller-supplied value — the `pi_blocking_bound` override from
// spec §6, used when a caller has a tighter externally-derived bound.
func WithBlockingBound(b duration.Duration) Option {
	return func(c *config) { c.blockingBound = b; c.hasBlockingOverride = true }
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

// BlockingBound computes B_FP(tua): the maximum last-non-preemptive-region
// size among tasks of strictly lower priority than tua, minus one, clamped
// to zero. Tasks without a fixed priority are excluded — they cannot be
// ordered against tua and so cannot be shown to be lower-priority.
func BlockingBound(ts model.TaskSet, tua *model.Task) duration.Duration {
	tuaPrio, err := model.PriorityOf(tua)
	if err != nil {
		return 0
	}

	var max duration.Duration
	for _, t := range ts {
		if t == tua {
			continue
		}
		prio, err := model.PriorityOf(t)
		if err != nil || !prio.Less(tuaPrio) {
			continue
		}
		if v := t.Execution.LastNonPreemptive() - 1; v > max {
			max = v
		}
	}
	return duration.Max(0, max)
}

func effectiveBlockingBound(ts model.TaskSet, tua *model.Task, c config) duration.Duration {
	if c.hasBlockingOverride {
		return c.blockingBound
	}
	return BlockingBound(ts, tua)
}

// relevantTasks returns tua and every task of priority greater than or
// equal to tua's — the set whose RBF contributes to FP's busy window and
// interference terms. Tasks without a priority are excluded.
func relevantTasks(ts model.TaskSet, tua *model.Task) model.TaskSet {
	tuaPrio, err := model.PriorityOf(tua)
	if err != nil {
		return model.NewTaskSet(tua)
	}

	out := make(model.TaskSet, 0, len(ts))
	for _, t := range ts {
		if t == tua {
			out = append(out, t)
			continue
		}
		prio, err := model.PriorityOf(t)
		if err == nil && tuaPrio.Less(prio) {
			out = append(out, t)
		} else if err == nil && !tuaPrio.Less(prio) && !prio.Less(tuaPrio) {
			// equal priority: also relevant.
			out = append(out, t)
		}
	}
	return out
}

func totalRequest(ts model.TaskSet) model.StepFunction {
	fns := make([]model.StepFunction, len(ts))
	for i, t := range ts {
		fns[i] = model.NewRequestBoundFunction(t.Execution.WCET(), t.Arrivals)
	}
	return model.Total(fns...)
}

// PointsOfInterest merges the arrival steps of every relevant
// (equal-or-higher priority) task, including tua itself, per spec §4.7.
func PointsOfInterest(ts model.TaskSet, tua *model.Task) rtaiter.Seq {
	relevant := relevantTasks(ts, tua)
	seqs := make([]rtaiter.Seq, len(relevant))
	for i, t := range relevant {
		seqs[i] = t.Arrivals.Steps()
	}
	return rtaiter.MergeSortedUnique(seqs...)
}

// BusyWindowBound solves the FP busy-window fixed point: lhs identity, rhs
// inverts B_FP plus the total request of every equal-or-higher-priority
// task through the supply model, seeded at B_FP plus the minimum work of
// those tasks (see analysis/fifo.BusyWindowBound for why the Inverse form
// is used instead of comparing supply_bound to demand directly).
func BusyWindowBound(ts model.TaskSet, tua *model.Task, supply model.SupplyModel, opts ...Option) (duration.Duration, bool) {
	c := newConfig(opts)
	relevant := relevantTasks(ts, tua)
	total := totalRequest(relevant)
	blocking := effectiveBlockingBound(ts, tua, c)

	var minWork duration.Duration
	for _, t := range relevant {
		minWork += t.Execution.WCET().Duration()
	}

	lhs := func(x duration.Duration) duration.Duration { return x }
	rhs := func(x duration.Duration) duration.Duration {
		return supply.Inverse(blocking + total.Eval(x))
	}
	return solve.Inequality(lhs, rhs, solveOpts(blocking+minWork, c)...)
}

// SearchSpace returns the offsets within the busy window worth probing.
func SearchSpace(ts model.TaskSet, tua *model.Task, supply model.SupplyModel, opts ...Option) ([]duration.Duration, bool) {
	bw, ok := BusyWindowBound(ts, tua, supply, opts...)
	if !ok {
		return nil, false
	}
	return analysis.SparseSearchSpace(PointsOfInterest(ts, tua), bw)
}

// responseTimeAt solves x >= WCET(tua) + I_FP(A, x), I_FP(A, x) = sum over
// equal-or-higher-priority tasks' RBF(A+x), plus B_FP, minus one unit of
// tua's own job. The WCET(tua) terms cancel exactly, leaving
// x >= B_FP + Σ_relevant RBF(A+x).
func responseTimeAt(ts model.TaskSet, tua *model.Task, offset duration.Duration, blocking duration.Duration, c config) *duration.Duration {
	total := totalRequest(relevantTasks(ts, tua))
	lhs := func(x duration.Duration) duration.Duration { return x }
	rhs := func(x duration.Duration) duration.Duration { return blocking + total.Eval(offset+x) }
	x, ok := solve.Inequality(lhs, rhs, solveOpts(tua.Execution.WCET().Duration(), c)...)
	if !ok {
		return nil
	}
	return &x
}

// RTA computes the fixed-priority response-time-bound solution for tua
// within ts.
func RTA(ts model.TaskSet, tua *model.Task, supply model.SupplyModel, opts ...Option) analysis.Solution {
	c := newConfig(opts)

	bw, ok := BusyWindowBound(ts, tua, supply, opts...)
	if !ok {
		return analysis.NoSearchSpaceFound(ts, tua)
	}

	offsets, found := analysis.SparseSearchSpace(PointsOfInterest(ts, tua), bw)
	if !found {
		return analysis.NoSearchSpaceFound(ts, tua)
	}

	blocking := effectiveBlockingBound(ts, tua, c)
	points := make([]analysis.SearchPoint, len(offsets))
	for i, off := range offsets {
		points[i] = analysis.SearchPoint{Offset: off, ResponseTime: responseTimeAt(ts, tua, off, blocking, c)}
	}
	return analysis.FromSearchSpace(ts, tua, bw, points)
}
