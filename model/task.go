package model

import "github.com/katalvlaran/rta/duration"

// Task is one schedulable unit of work: an arrival pattern, an execution
// model, and optionally a deadline and/or a fixed priority. Deadline and
// priority are optional because different policies need different subsets
// — EDF needs a deadline but no priority, fixed-priority needs a priority
// but deadlines are optional, FIFO needs neither.
//
// Task identity is by pointer: two tasks with identical parameters are
// still distinct tasks; the analysis packages compare tasks with ==.
type Task struct {
	Arrivals  ArrivalModel
	Execution ExecutionModel

	deadline    *duration.Deadline
	hasDeadline bool
	priority    *duration.Priority
	hasPriority bool
}

// TaskOption configures optional Task parameters.
type TaskOption func(*Task)

// WithDeadline attaches a relative deadline to the task.
func WithDeadline(d duration.Deadline) TaskOption {
	return func(t *Task) {
		t.deadline = &d
		t.hasDeadline = true
	}
}

// WithPriority attaches a fixed priority to the task.
func WithPriority(p duration.Priority) TaskOption {
	return func(t *Task) {
		t.priority = &p
		t.hasPriority = true
	}
}

// NewTask constructs a task from its arrival and execution models, plus
// any optional parameters.
func NewTask(arrivals ArrivalModel, execution ExecutionModel, opts ...TaskOption) *Task {
	t := &Task{Arrivals: arrivals, Execution: execution}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// DeadlineOf returns the task's deadline, or ErrDeadlineMissing if it was
// constructed without one.
func DeadlineOf(t *Task) (duration.Deadline, error) {
	if !t.hasDeadline {
		return 0, ErrDeadlineMissing
	}
	return *t.deadline, nil
}

// PriorityOf returns the task's priority, or ErrPriorityMissing if it was
// constructed without one.
func PriorityOf(t *Task) (duration.Priority, error) {
	if !t.hasPriority {
		return 0, ErrPriorityMissing
	}
	return *t.priority, nil
}

// TaskSet is an ordered collection of tasks analyzed together. Order is
// preserved as given; nothing in this package sorts it.
type TaskSet []*Task

// NewTaskSet builds a TaskSet from its member tasks.
func NewTaskSet(tasks ...*Task) TaskSet {
	ts := make(TaskSet, len(tasks))
	copy(ts, tasks)
	return ts
}
