// Package workload generates randomized task sets for property and
// regression tests: a deterministic, per-seed RNG stream produces a mix
// of arrival models at a target total utilization, in the idiom of
// tsp/rng.go's deriveRNG and ported from
// original_source/tests/test_random_workloads.py's iter_random_task_sets.
//
// Nothing here is part of the analysis engine itself — it is a test-only
// collaborator, never imported by model, analysis, solve, or rtaiter.
package workload
