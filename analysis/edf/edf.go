package edf

import (
	"sort"

	"github.com/katalvlaran/rta/analysis"
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/model"
	"github.com/katalvlaran/rta/rtaiter"
	"github.com/katalvlaran/rta/solve"
)

// config holds the optional knobs accepted by the EDF driver.
type config struct {
	horizon    duration.Duration
	hasHorizon bool
}

// Option configures an EDF analysis call.
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

// BlockingBound computes B_EDF(tua, offset): the maximum non-preemptive
// region size, minus one, among tasks whose deadline exceeds
// offset + deadline(tua) — the only tasks that could still be holding a
// non-preemptive region open when an urgent tua job arrives at this
// offset within the busy window. Tasks without a deadline are excluded,
// as are tua itself.
func BlockingBound(ts model.TaskSet, tua *model.Task, offset duration.Duration) duration.Duration {
	tuaDeadline, err := model.DeadlineOf(tua)
	if err != nil {
		return 0
	}
	threshold := offset + tuaDeadline.Duration()

	var max duration.Duration
	for _, t := range ts {
		if t == tua {
			continue
		}
		dl, err := model.DeadlineOf(t)
		if err != nil || dl.Duration() <= threshold {
			continue
		}
		if v := t.Execution.MaxNonPreemptive() - 1; v > max {
			max = v
		}
	}
	return duration.Max(0, max)
}

// BlockingBoundSteps enumerates the distinct, ascending
// deadline(τⱼ) − deadline(τᵤ) offsets at which BlockingBound's threshold
// can change, for every τⱼ ≠ τᵤ with a longer deadline (spec §4.5, P8).
func BlockingBoundSteps(ts model.TaskSet, tua *model.Task) rtaiter.Seq {
	tuaDeadline, err := model.DeadlineOf(tua)
	if err != nil {
		return func(func(duration.Duration) bool) {}
	}

	seen := make(map[duration.Duration]struct{})
	diffs := make([]duration.Duration, 0, len(ts))
	for _, t := range ts {
		if t == tua {
			continue
		}
		dl, err := model.DeadlineOf(t)
		if err != nil || dl.Duration() <= tuaDeadline.Duration() {
			continue
		}
		diff := dl.Duration() - tuaDeadline.Duration()
		if _, ok := seen[diff]; !ok {
			seen[diff] = struct{}{}
			diffs = append(diffs, diff)
		}
	}
	sort.Slice(diffs, func(i, j int) bool { return diffs[i] < diffs[j] })

	return func(yield func(duration.Duration) bool) {
		for _, d := range diffs {
			if !yield(d) {
				return
			}
		}
	}
}

// BusyWindowBoundNPS is the offset-independent, non-iterative busy-window
// bound: tua's own WCET plus the worst-case priority inversion at offset 0.
func BusyWindowBoundNPS(ts model.TaskSet, tua *model.Task) duration.Duration {
	return tua.Execution.WCET().Duration() + BlockingBound(ts, tua, 0)
}

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

// BusyWindowBoundRBF is the fixed point of the total request bound over
// every task in ts (no blocking term) against the supply model — the same
// identity-lhs/Inverse-rhs technique as analysis/fifo.BusyWindowBound,
// seeded at the minimum work of the whole set.
func BusyWindowBoundRBF(ts model.TaskSet, supply model.SupplyModel, opts ...Option) (duration.Duration, bool) {
	c := newConfig(opts)
	total := totalRequest(ts)
	lhs := func(x duration.Duration) duration.Duration { return x }
	rhs := func(x duration.Duration) duration.Duration { return supply.Inverse(total.Eval(x)) }
	return solve.Inequality(lhs, rhs, solveOpts(sumWCET(ts), c)...)
}

// BusyWindowBound combines the two complementary EDF bounds: NPS dominates
// when non-preemptive blocking is the bottleneck, RBF dominates when raw
// aggregate demand is. The reported bound is their maximum — the smaller
// of the two is not itself a valid upper envelope on its own (verified
// against spec §8 scenario 3: nps=5, rbf=8, busy_window_bound=8).
func BusyWindowBound(ts model.TaskSet, tua *model.Task, supply model.SupplyModel, opts ...Option) (duration.Duration, bool) {
	rbf, ok := BusyWindowBoundRBF(ts, supply, opts...)
	if !ok {
		return 0, false
	}
	nps := BusyWindowBoundNPS(ts, tua)
	return duration.Max(nps, rbf), true
}

// PointsOfInterest merges the arrival steps of every task in ts with the
// step-enumeration of the offset-indexed blocking bound, per spec §4.7.
func PointsOfInterest(ts model.TaskSet, tua *model.Task) rtaiter.Seq {
	seqs := make([]rtaiter.Seq, 0, len(ts)+1)
	for _, t := range ts {
		seqs = append(seqs, t.Arrivals.Steps())
	}
	seqs = append(seqs, BlockingBoundSteps(ts, tua))
	return rtaiter.MergeSortedUnique(seqs...)
}

// SearchSpace returns the offsets within the busy window worth probing.
func SearchSpace(ts model.TaskSet, tua *model.Task, supply model.SupplyModel, opts ...Option) ([]duration.Duration, bool) {
	bw, ok := BusyWindowBound(ts, tua, supply, opts...)
	if !ok {
		return nil, false
	}
	return analysis.SparseSearchSpace(PointsOfInterest(ts, tua), bw)
}

// demandBoundAt evaluates task t's demand-bound function at delta, or
// falls back to its RBF (no pruning) when t carries no deadline — a task
// with no deadline cannot be shown to have finished any earlier, so its
// interference is left unpruned rather than arbitrarily discarded.
func demandBoundAt(t *model.Task, delta duration.Duration) duration.Duration {
	dl, err := model.DeadlineOf(t)
	rbf := model.NewRequestBoundFunction(t.Execution.WCET(), t.Arrivals)
	if err != nil {
		return rbf.Eval(delta)
	}
	dbf := model.NewDemandBoundFunction(rbf, dl)
	return dbf.Eval(delta)
}

// responseTimeAt computes the worst-case completion time, relative to its
// own release, of the hypothetical tua job released at offset — offset
// ranges over every candidate critical instant in the busy window (spec
// §4.7's points of interest), not only tua's own natural phase, since the
// critical instant for tua is not restricted to multiples of its own
// period once other tasks and blocking are in play.
//
// The demand that must drain before this job finishes is: tua's own
// earlier backlog (RBF_tua(offset), counting only strictly earlier
// releases) plus this job's own execution, plus every other task's
// interference capped by its demand-bound function at offset+deadline(tua)
// — only the demand of τⱼ's jobs whose deadlines fall within that window
// counts, however much τⱼ has requested by offset — plus
// the non-preemptive blocking bound. Unlike the interfering tasks, tua's
// own contribution is never run through a DBF cap: the job under analysis
// is unconditionally counted once per spec's job-under-analysis framing,
// matching the same direct-evaluation shape used by fifo.responseTimeAt.
// The total is inverted back through the supply model to reach an
// absolute completion time, then offset is subtracted to get a response.
func responseTimeAt(ts model.TaskSet, tua *model.Task, offset duration.Duration, supply model.SupplyModel) duration.Duration {
	tuaRBF := model.NewRequestBoundFunction(tua.Execution.WCET(), tua.Arrivals)
	demand := tuaRBF.Eval(offset) + tua.Execution.WCET().Duration()

	tuaDeadline, err := model.DeadlineOf(tua)
	var dbfArg duration.Duration
	if err == nil {
		dbfArg = offset + tuaDeadline.Duration()
	}
	for _, t := range ts {
		if t == tua {
			continue
		}
		rbf := model.NewRequestBoundFunction(t.Execution.WCET(), t.Arrivals)
		demand += duration.Min(rbf.Eval(offset), demandBoundAt(t, dbfArg))
	}
	demand += BlockingBound(ts, tua, offset)

	return supply.Inverse(demand) - offset
}

// RTA computes the EDF response-time-bound solution for tua within ts.
func RTA(ts model.TaskSet, tua *model.Task, supply model.SupplyModel, opts ...Option) analysis.Solution {
	bw, ok := BusyWindowBound(ts, tua, supply, opts...)
	if !ok {
		return analysis.NoSearchSpaceFound(ts, tua)
	}

	offsets, found := analysis.SparseSearchSpace(PointsOfInterest(ts, tua), bw)
	if !found {
		return analysis.NoSearchSpaceFound(ts, tua)
	}

	points := make([]analysis.SearchPoint, len(offsets))
	for i, off := range offsets {
		r := responseTimeAt(ts, tua, off, supply)
		points[i] = analysis.SearchPoint{Offset: off, ResponseTime: &r}
	}
	return analysis.FromSearchSpace(ts, tua, bw, points)
}
