package duration

import "errors"

// Sentinel errors for newtype construction. Following the teacher's
// per-package sentinel convention, messages are prefixed "duration: ...".
var (
	// ErrNegativeDuration indicates a Duration-valued quantity was constructed
	// with a negative value where the domain requires non-negative.
	ErrNegativeDuration = errors.New("duration: value must be non-negative")

	// ErrNonPositiveWCET indicates a WCET was constructed with a value <= 0.
	ErrNonPositiveWCET = errors.New("duration: WCET must be positive")

	// ErrNegativeDeadline indicates a Deadline was constructed with a negative value.
	ErrNegativeDeadline = errors.New("duration: deadline must be non-negative")
)

// Duration is a non-negative integer quantity in abstract time units.
// All arithmetic over Duration in this module is integer; no floating
// point appears anywhere in the engine.
type Duration int64

// Max returns the greater of a and b. Used at call sites that would
// otherwise produce a negative intermediate (e.g. a non-preemptive region
// size minus one in the FP and EDF blocking bounds) to enforce the
// "clamped to zero" contract from spec §3.
func Max(a, b Duration) Duration {
	if a > b {
		return a
	}
	return b
}

// Min returns the lesser of a and b.
func Min(a, b Duration) Duration {
	if a < b {
		return a
	}
	return b
}

// WCET is the worst-case execution time of a single job.
type WCET Duration

// NewWCET validates c > 0 and returns a WCET, or ErrNonPositiveWCET.
func NewWCET(c Duration) (WCET, error) {
	if c <= 0 {
		return 0, ErrNonPositiveWCET
	}
	return WCET(c), nil
}

// Duration reinterprets w as a plain Duration.
func (w WCET) Duration() Duration { return Duration(w) }

// Deadline is a relative deadline, measured from job release.
type Deadline Duration

// NewDeadline validates d >= 0 and returns a Deadline, or ErrNegativeDeadline.
func NewDeadline(d Duration) (Deadline, error) {
	if d < 0 {
		return 0, ErrNegativeDeadline
	}
	return Deadline(d), nil
}

// Duration reinterprets d as a plain Duration.
func (d Deadline) Duration() Duration { return Duration(d) }

// Priority is a scheduling priority. Higher numeric value wins (the Linux
// convention, per spec §3 and the original readme example), not the POSIX
// convention where smaller is more urgent.
type Priority int

// NewPriority is a transparent constructor; any int is a valid priority.
func NewPriority(p int) Priority { return Priority(p) }

// Less reports whether p has strictly lower scheduling priority than q.
func (p Priority) Less(q Priority) bool { return p < q }
