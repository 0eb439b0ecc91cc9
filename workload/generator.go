package workload

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/model"
)

// Mix thresholds for the arrival-model lottery, ported verbatim from
// original_source/tests/test_random_workloads.py's draw_task: each is the
// probability that one fresh draw takes its branch at the point where
// drawArrivalModel or drawPeriod checks it, not a cumulative probability.
const (
	periodicThreshold    = 0.4
	roundPeriodThreshold = 0.5
	sporadicThreshold    = 0.2
	jitterThreshold      = 0.7
	deltaMinThreshold    = 0.1
)

// roundPeriods is the set of "nice" periods drawn when the round-period
// branch is taken, instead of a uniform draw over [10, 1000].
var roundPeriods = []duration.Duration{10, 25, 50, 100, 250, 500, 1000}

// DefaultSeeds are the deterministic seeds used by GenerateTaskSets when
// the caller has no preference of their own — one per name in the
// original test suite's SEEDS tuple (Liu, Layland, Stankovic, ...),
// replaced here with fixed integers since Go's string hash is randomized
// per process and so unsuitable for a reproducible seed list.
var DefaultSeeds = []int64{101, 103, 107, 109, 113, 127, 131, 137, 139, 149}

// DefaultTaskSetsPerSeed is the number of task sets drawn per seed.
const DefaultTaskSetsPerSeed = 5

// DefaultTargetUtilization is the total utilization each generated task
// set is scaled to.
const DefaultTargetUtilization = 0.7

func maybe(rng *rand.Rand, threshold float64) bool {
	return rng.Float64() <= threshold
}

// randInt returns a uniform random integer in [lo, hi], inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func drawPeriod(rng *rand.Rand) duration.Duration {
	if maybe(rng, roundPeriodThreshold) {
		return roundPeriods[rng.Intn(len(roundPeriods))]
	}
	return duration.Duration(randInt(rng, 10, 1000))
}

// drawArrivalModel picks one of the five arrival-model shapes and returns
// it along with h (a representative horizon) and n (a representative
// arrival count), used together to size the task's WCET to its target
// utilization.
func drawArrivalModel(rng *rand.Rand) (model.ArrivalModel, duration.Duration, int) {
	switch {
	case maybe(rng, periodicThreshold):
		if maybe(rng, jitterThreshold) {
			period := drawPeriod(rng)
			am, err := model.NewPeriodicWithJitter(period, duration.Duration(randInt(rng, 1, 1000)))
			if err != nil {
				panic("workload: invalid generated PeriodicWithJitter: " + err.Error())
			}
			return am, period, 1
		}
		period := drawPeriod(rng)
		am, err := model.NewPeriodic(period)
		if err != nil {
			panic("workload: invalid generated Periodic: " + err.Error())
		}
		return am, period, 1

	case maybe(rng, sporadicThreshold):
		mit := duration.Duration(randInt(rng, 10, 1000))
		am, err := model.NewSporadic(mit)
		if err != nil {
			panic("workload: invalid generated Sporadic: " + err.Error())
		}
		return am, mit, 1

	case maybe(rng, deltaMinThreshold):
		gap := duration.Duration(randInt(rng, 3, 25))
		count := randInt(rng, 5, 20)
		dmin := make([]duration.Duration, 0, count)
		for i := 0; i < count; i++ {
			dmin = append(dmin, gap)
			gap += duration.Duration(randInt(rng, 25, 50))
		}
		am, err := model.NewMinimumSeparationVector(dmin)
		if err != nil {
			panic("workload: invalid generated MinimumSeparationVector: " + err.Error())
		}
		return am, am.MaxCoveredDelta(), am.MaxCoveredNJobs()

	default:
		type point struct {
			delta duration.Duration
			n     int
		}
		steps := []point{{1, 1}}
		gap := duration.Duration(randInt(rng, 3, 20))
		extra := randInt(rng, 2, 20)
		for i := 0; i < extra; i++ {
			last := steps[len(steps)-1]
			steps = append(steps, point{last.delta + gap, last.n + 1})
			gap += duration.Duration(randInt(rng, 0, 10))
		}
		last := steps[len(steps)-1]
		horizon := last.delta + duration.Duration(randInt(rng, 50, 100))

		acSteps := make([]model.ACStep, len(steps))
		for i, s := range steps {
			acSteps[i] = model.ACStep{Delta: s.delta, N: s.n}
		}
		am, err := model.NewArrivalCurvePrefix(horizon, acSteps)
		if err != nil {
			panic("workload: invalid generated ArrivalCurvePrefix: " + err.Error())
		}
		return am, horizon, last.n
	}
}

// drawTask builds one task at the given target per-task utilization,
// mirroring draw_task: WCET is sized so that n arrivals of WCET within
// horizon h approximate the target utilization, a random deadline within
// [0.5h, 1.5h) is attached, and a random priority in [0, 100].
func drawTask(rng *rand.Rand, util float64) *model.Task {
	am, h, n := drawArrivalModel(rng)

	wcetValue := duration.Duration(math.Floor(float64(h) * util / float64(n)))
	if wcetValue < 1 {
		wcetValue = 1
	}
	wcet, err := duration.NewWCET(wcetValue)
	if err != nil {
		panic("workload: invalid generated WCET: " + err.Error())
	}
	exec, err := model.NewFullyPreemptive(wcet)
	if err != nil {
		panic("workload: invalid generated execution model: " + err.Error())
	}

	deadlineValue := duration.Duration(float64(h) * (0.5 + rng.Float64()))
	deadline, err := duration.NewDeadline(deadlineValue)
	if err != nil {
		panic("workload: invalid generated deadline: " + err.Error())
	}
	priority := duration.NewPriority(randInt(rng, 0, 100))

	return model.NewTask(am, exec, model.WithDeadline(deadline), model.WithPriority(priority))
}

// drawTaskSet builds one task set of 2 to 10 tasks whose individual
// utilizations are scaled to sum to target.
func drawTaskSet(rng *rand.Rand, target float64) model.TaskSet {
	n := randInt(rng, 2, 10)
	utils := make([]float64, n)
	var sum float64
	for i := range utils {
		utils[i] = 0.1 + rng.Float64()*0.4
		sum += utils[i]
	}
	scale := target / sum

	tasks := make([]*model.Task, n)
	for i, u := range utils {
		tasks[i] = drawTask(rng, u*scale)
	}
	return model.NewTaskSet(tasks...)
}

// GenerateTaskSets deterministically generates len(seeds)*perSeed task
// sets at the given target utilization: for each seed, a fresh RNG stream
// produces perSeed independent task sets. Same seeds, same perSeed, same
// target always produce the same task sets — the property this package
// exists to give regression and P1-P8 table tests.
func GenerateTaskSets(seeds []int64, perSeed int, targetUtilization float64) []model.TaskSet {
	out := make([]model.TaskSet, 0, len(seeds)*perSeed)
	for _, seed := range seeds {
		rng := rngFromSeed(seed)
		for i := 0; i < perSeed; i++ {
			out = append(out, drawTaskSet(rng, targetUtilization))
		}
	}
	return out
}
