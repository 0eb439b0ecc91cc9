// Package rta implements response-time analysis (RTA) for real-time task
// sets: given an arrival model, an execution model and a supply model per
// task, it computes a busy-window bound, a sparse search space of offsets,
// and a per-offset worst-case response time, for three scheduling
// policies — FIFO, fixed-priority and EDF.
//
// The engine is organized under several subpackages:
//
//	duration/  — the Duration/WCET/Deadline/Priority newtypes everything
//	             else is built on
//	model/     — arrival models, execution models, supply models, RBF/DBF,
//	             Task and TaskSet
//	rtaiter/   — lazy iter.Seq helpers for merging and walking step
//	             functions without materializing them
//	solve/     — the shared fixed-point inequality solver used by every
//	             policy's busy-window and response-time recurrences
//	analysis/  — the Solution type and sparse search-space construction,
//	             shared by the three policy drivers below
//	analysis/fifo, analysis/fp, analysis/edf — the policy-specific
//	             busy-window, blocking-bound and RTA drivers
//	workload/  — a deterministic randomized task-set generator, used only
//	             by tests
//
//	go get github.com/katalvlaran/rta
package rta
