package solve

import "github.com/katalvlaran/rta/duration"

// config holds the optional knobs accepted by Inequality, set via Option.
// Mirrors the teacher's functional-option convention (core.GraphOption,
// dijkstra.Option) rather than a bare struct literal, so call sites read
// as `solve.Inequality(lhs, rhs, solve.WithHorizon(h))`.
type config struct {
	seed    duration.Duration
	horizon duration.Duration
	hasMax  bool
}

// Option configures a call to Inequality.
type Option func(*config)

// WithSeed sets the starting point of the iteration. Default 0.
func WithSeed(seed duration.Duration) Option {
	return func(c *config) { c.seed = seed }
}

// WithHorizon sets an inclusive upper bound on the solution. If the
// iteration's x ever exceeds horizon, Inequality reports no solution
// rather than continuing to iterate. Omit for an unbounded search.
func WithHorizon(horizon duration.Duration) Option {
	return func(c *config) { c.horizon = horizon; c.hasMax = true }
}

// Inequality finds the least x >= seed such that lhs(x) >= rhs(x), given
// that both lhs and rhs are monotone non-decreasing in x and that rhs
// grows no faster than lhs beyond the fixed point (the caller's
// responsibility to guarantee — see spec §4.2).
//
// Iteration: start at x = seed; while lhs(x) < rhs(x), set x = rhs(x).
// Progress must be strict: callers guarantee rhs(x) > x whenever
// lhs(x) < rhs(x), since rhs(x) is itself the new candidate x. If a
// horizon is supplied and x exceeds it, Inequality returns (0, false)
// rather than iterating further — this is the engine's only protection
// against a divergent fixed point.
//
// Returns (x, true) on convergence, (0, false) if the horizon was
// exceeded first.
func Inequality(lhs, rhs func(duration.Duration) duration.Duration, opts ...Option) (duration.Duration, bool) {
	cfg := config{seed: 0}
	for _, opt := range opts {
		opt(&cfg)
	}

	x := cfg.seed
	for lhs(x) < rhs(x) {
		x = rhs(x)
		if cfg.hasMax && x > cfg.horizon {
			return 0, false
		}
	}
	return x, true
}
