package analysis

import (
	"github.com/katalvlaran/rta/duration"
	"github.com/katalvlaran/rta/model"
)

// SearchPoint is one explored offset within the busy window: the offset
// itself, and the response time computed there, or nil if the per-offset
// fixed point did not converge within the horizon.
type SearchPoint struct {
	Offset       duration.Duration
	ResponseTime *duration.Duration
}

// Solution is the immutable result of running a policy RTA driver: the
// busy-window bound used to scope the search, the search space explored,
// and the derived response-time bound.
//
// A nil SearchSpace means no analysis was possible at this level: no
// busy-window bound was found within the horizon, or the point-of-interest
// stream was empty (spec §4.8); a non-nil SearchSpace with at
// least one nil ResponseTime means the horizon was exceeded for that
// offset, and the overall bound is undefined (P7).
type Solution struct {
	TaskSet         model.TaskSet
	Task            *model.Task
	BusyWindowBound *duration.Duration
	SearchSpace     []SearchPoint
}

// FromSearchSpace packages a Solution from a computed busy-window bound
// and search space.
func FromSearchSpace(ts model.TaskSet, task *model.Task, busyWindowBound duration.Duration, searchSpace []SearchPoint) Solution {
	bw := busyWindowBound
	return Solution{
		TaskSet:         ts,
		Task:            task,
		BusyWindowBound: &bw,
		SearchSpace:     searchSpace,
	}
}

// NoSearchSpaceFound packages a Solution for the case where no
// busy-window bound (and therefore no search space) could be computed.
func NoSearchSpaceFound(ts model.TaskSet, task *model.Task) Solution {
	return Solution{TaskSet: ts, Task: task}
}

// BoundFound reports whether every explored offset converged to a
// response time, per P7: true iff SearchSpace is non-nil and every entry
// has a non-nil ResponseTime.
func (s Solution) BoundFound() bool {
	if s.SearchSpace == nil {
		return false
	}
	for _, p := range s.SearchSpace {
		if p.ResponseTime == nil {
			return false
		}
	}
	return true
}

// ResponseTimeBound returns the maximum response time across the search
// space, and true, iff BoundFound(); otherwise (0, false).
func (s Solution) ResponseTimeBound() (duration.Duration, bool) {
	if !s.BoundFound() {
		return 0, false
	}
	var max duration.Duration
	for i, p := range s.SearchSpace {
		if i == 0 || *p.ResponseTime > max {
			max = *p.ResponseTime
		}
	}
	return max, true
}
