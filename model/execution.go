package model

import "github.com/katalvlaran/rta/duration"

// ExecutionModel describes how a task's WCET may be preempted, bounding
// the blocking a lower-priority job can inflict on higher-priority work:
// MaxNonPreemptive is the largest non-preemptive region anywhere in a job's
// execution (EDF's blocking term, see analysis/edf), LastNonPreemptive is
// the size of the region that runs last (FP's blocking term, see
// analysis/fp).
type ExecutionModel interface {
	// WCET returns the task's worst-case execution time.
	WCET() duration.WCET

	// MaxNonPreemptive returns the largest non-preemptive region size.
	MaxNonPreemptive() duration.Duration

	// LastNonPreemptive returns the non-preemptive region size at the end
	// of execution.
	LastNonPreemptive() duration.Duration
}

// FullyPreemptive allows preemption at any instant: no non-preemptive
// region.
type FullyPreemptive struct {
	wcet duration.WCET
}

// NewFullyPreemptive validates wcet > 0.
func NewFullyPreemptive(wcet duration.WCET) (*FullyPreemptive, error) {
	if wcet <= 0 {
		return nil, duration.ErrNonPositiveWCET
	}
	return &FullyPreemptive{wcet: wcet}, nil
}

func (f *FullyPreemptive) WCET() duration.WCET                   { return f.wcet }
func (f *FullyPreemptive) MaxNonPreemptive() duration.Duration    { return 0 }
func (f *FullyPreemptive) LastNonPreemptive() duration.Duration   { return 0 }

// FullyNonPreemptive runs start-to-finish without preemption: the entire
// WCET is one non-preemptive region.
type FullyNonPreemptive struct {
	wcet duration.WCET
}

// NewFullyNonPreemptive validates wcet > 0.
func NewFullyNonPreemptive(wcet duration.WCET) (*FullyNonPreemptive, error) {
	if wcet <= 0 {
		return nil, duration.ErrNonPositiveWCET
	}
	return &FullyNonPreemptive{wcet: wcet}, nil
}

func (f *FullyNonPreemptive) WCET() duration.WCET { return f.wcet }
func (f *FullyNonPreemptive) MaxNonPreemptive() duration.Duration {
	return f.wcet.Duration()
}
func (f *FullyNonPreemptive) LastNonPreemptive() duration.Duration {
	return f.wcet.Duration()
}

// FloatingNonPreemptive may be preempted only between a bounded set of
// non-preemptive regions of at most MaxNPS each; the position of the final
// region within the job is unconstrained, so LastNonPreemptive
// conservatively equals MaxNPS.
type FloatingNonPreemptive struct {
	wcet   duration.WCET
	maxNPS duration.Duration
}

// NewFloatingNonPreemptive validates wcet > 0 and 0 < maxNPS <= wcet.
func NewFloatingNonPreemptive(wcet duration.WCET, maxNPS duration.Duration) (*FloatingNonPreemptive, error) {
	if wcet <= 0 {
		return nil, duration.ErrNonPositiveWCET
	}
	if maxNPS <= 0 {
		return nil, ErrNonPositiveNPS
	}
	if maxNPS > wcet.Duration() {
		return nil, ErrNPSExceedsWCET
	}
	return &FloatingNonPreemptive{wcet: wcet, maxNPS: maxNPS}, nil
}

func (f *FloatingNonPreemptive) WCET() duration.WCET                 { return f.wcet }
func (f *FloatingNonPreemptive) MaxNonPreemptive() duration.Duration  { return f.maxNPS }
func (f *FloatingNonPreemptive) LastNonPreemptive() duration.Duration { return f.maxNPS }

// LimitedPreemptive is preempted only at a fixed set of preemption points,
// with explicit maximum and last non-preemptive region sizes, both
// bounded by WCET.
type LimitedPreemptive struct {
	wcet     duration.WCET
	maxNPS   duration.Duration
	lastNPS  duration.Duration
}

// NewLimitedPreemptive validates wcet > 0, 0 < maxNPS <= wcet, and
// 0 < lastNPS <= maxNPS.
func NewLimitedPreemptive(wcet duration.WCET, maxNPS, lastNPS duration.Duration) (*LimitedPreemptive, error) {
	if wcet <= 0 {
		return nil, duration.ErrNonPositiveWCET
	}
	if maxNPS <= 0 {
		return nil, ErrNonPositiveNPS
	}
	if maxNPS > wcet.Duration() {
		return nil, ErrNPSExceedsWCET
	}
	if lastNPS <= 0 {
		return nil, ErrNonPositiveNPS
	}
	if lastNPS > maxNPS {
		return nil, ErrLastNPSExceedsMax
	}
	return &LimitedPreemptive{wcet: wcet, maxNPS: maxNPS, lastNPS: lastNPS}, nil
}

func (l *LimitedPreemptive) WCET() duration.WCET                 { return l.wcet }
func (l *LimitedPreemptive) MaxNonPreemptive() duration.Duration  { return l.maxNPS }
func (l *LimitedPreemptive) LastNonPreemptive() duration.Duration { return l.lastNPS }
