package model

import (
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/rtaiter"
)

// StepFunction is any Δ -> value curve that only increases at a sparse,
// enumerable set of points — the common shape shared by request-bound,
// demand-bound, and total-workload functions throughout the analysis
// packages.
type StepFunction interface {
	// Eval returns the function's value at delta.
	Eval(delta duration.Duration) duration.Duration

	// Steps enumerates the Δ at which Eval increases, in the same
	// brute-force convention as ArrivalModel.Steps.
	Steps() rtaiter.Seq
}

// RequestBoundFunction bounds the processing demand a task can request in
// any window of length Δ: its arrival model's count times its WCET.
type RequestBoundFunction struct {
	wcet     duration.WCET
	arrivals ArrivalModel
}

// NewRequestBoundFunction builds the RBF for one task's WCET and arrival
// model.
func NewRequestBoundFunction(wcet duration.WCET, arrivals ArrivalModel) *RequestBoundFunction {
	return &RequestBoundFunction{wcet: wcet, arrivals: arrivals}
}

// Eval returns MaxArrivals(delta) * WCET.
func (r *RequestBoundFunction) Eval(delta duration.Duration) duration.Duration {
	if delta <= 0 {
		return 0
	}
	return duration.Duration(r.arrivals.MaxArrivals(delta)) * r.wcet.Duration()
}

// Steps delegates to the underlying arrival model: WCET scales values, not
// step positions.
func (r *RequestBoundFunction) Steps() rtaiter.Seq {
	return r.arrivals.Steps()
}

// DemandBoundFunction bounds the processing demand that a task's jobs
// impose before their own deadlines, within any window of length Δ: it is
// the task's RBF evaluated Deadline earlier.
type DemandBoundFunction struct {
	rbf      *RequestBoundFunction
	deadline duration.Deadline
}

// NewDemandBoundFunction builds the DBF for one task's RBF and deadline.
func NewDemandBoundFunction(rbf *RequestBoundFunction, deadline duration.Deadline) *DemandBoundFunction {
	return &DemandBoundFunction{rbf: rbf, deadline: deadline}
}

// Eval returns 0 for delta < Deadline, else RBF(delta - Deadline).
func (d *DemandBoundFunction) Eval(delta duration.Duration) duration.Duration {
	dl := d.deadline.Duration()
	if delta < dl {
		return 0
	}
	return d.rbf.Eval(delta - dl)
}

// Steps shifts the RBF's steps forward by Deadline.
func (d *DemandBoundFunction) Steps() rtaiter.Seq {
	dl := d.deadline.Duration()
	return func(yield func(duration.Duration) bool) {
		for s := range d.rbf.Steps() {
			if !yield(s + dl) {
				return
			}
		}
	}
}

// total sums a fixed set of StepFunctions, merging their step enumerators
// into one sorted, deduplicated stream.
type total struct {
	fns []StepFunction
}

// Total builds the pointwise sum of several step functions — used to
// combine per-task RBFs/DBFs into a task set's aggregate workload curve.
func Total(fns ...StepFunction) StepFunction {
	return &total{fns: fns}
}

// Eval returns the sum of every component's Eval(delta).
func (t *total) Eval(delta duration.Duration) duration.Duration {
	var sum duration.Duration
	for _, f := range t.fns {
		sum += f.Eval(delta)
	}
	return sum
}

// Steps merges every component's step enumerator.
func (t *total) Steps() rtaiter.Seq {
	seqs := make([]rtaiter.Seq, len(t.fns))
	for i, f := range t.fns {
		seqs[i] = f.Steps()
	}
	return rtaiter.MergeSortedUnique(seqs...)
}
