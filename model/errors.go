package model

import "errors"

// Sentinel errors for the model package, prefixed "model: " per the
// teacher's per-package sentinel convention (core/types.go, matrix/errors.go).
//
// ERROR PRIORITY: construction validation errors (spec §7.1) are returned
// from constructors — no partial object is ever produced. Missing-attribute
// errors (spec §7.2) are returned from DeadlineOf/PriorityOf, never panics.
var (
	// ErrNonPositivePeriod indicates a period or minimum-inter-arrival-time
	// parameter was <= 0.
	ErrNonPositivePeriod = errors.New("model: period must be positive")

	// ErrNegativeJitter indicates a jitter parameter was negative.
	ErrNegativeJitter = errors.New("model: jitter must be non-negative")

	// ErrEmptyMinSeparation indicates MinimumSeparationVector was built with
	// an empty separation prefix.
	ErrEmptyMinSeparation = errors.New("model: minimum-separation vector must not be empty")

	// ErrNonIncreasingMinSeparation indicates the dmin prefix was not
	// strictly increasing.
	ErrNonIncreasingMinSeparation = errors.New("model: minimum-separation vector must be strictly increasing")

	// ErrNonPositiveHorizon indicates an ArrivalCurvePrefix horizon was <= 0.
	ErrNonPositiveHorizon = errors.New("model: arrival curve prefix horizon must be positive")

	// ErrEmptyACSteps indicates an ArrivalCurvePrefix was built with no steps.
	ErrEmptyACSteps = errors.New("model: arrival curve prefix must have at least one step")

	// ErrNonIncreasingACSteps indicates the (Δ, n) steps of an
	// ArrivalCurvePrefix were not strictly increasing in both fields.
	ErrNonIncreasingACSteps = errors.New("model: arrival curve prefix steps must be strictly increasing")

	// ErrACStepsExceedHorizon indicates a step's Δ exceeded the declared horizon.
	ErrACStepsExceedHorizon = errors.New("model: arrival curve prefix step exceeds horizon")

	// ErrInvalidSpeed indicates IdealProcessor was constructed with a
	// non-positive speed.
	ErrInvalidSpeed = errors.New("model: processor speed must be positive")

	// ErrInvalidRateDelayPeriod indicates RateDelayModel's period was < 1.
	ErrInvalidRateDelayPeriod = errors.New("model: rate-delay period must be >= 1")

	// ErrInvalidRateDelayAllocation indicates RateDelayModel's allocation
	// was < 1, or exceeded its period.
	ErrInvalidRateDelayAllocation = errors.New("model: rate-delay allocation must be in [1, period]")

	// ErrInvalidRateDelayDelay indicates RateDelayModel's delay was negative.
	ErrInvalidRateDelayDelay = errors.New("model: rate-delay delay must be non-negative")

	// ErrNonPositiveNPS indicates a non-preemptive region size was <= 0
	// where the execution model requires one.
	ErrNonPositiveNPS = errors.New("model: non-preemptive region size must be positive")

	// ErrNPSExceedsWCET indicates a non-preemptive region size was larger
	// than the task's WCET.
	ErrNPSExceedsWCET = errors.New("model: non-preemptive region cannot exceed WCET")

	// ErrLastNPSExceedsMax indicates a last non-preemptive region was
	// larger than the maximum non-preemptive region.
	ErrLastNPSExceedsMax = errors.New("model: last non-preemptive region cannot exceed the maximum")

	// ErrDeadlineMissing is returned by DeadlineOf when the task was
	// constructed without a deadline.
	ErrDeadlineMissing = errors.New("model: deadline parameter missing")

	// ErrPriorityMissing is returned by PriorityOf when the task was
	// constructed without a priority.
	ErrPriorityMissing = errors.New("model: priority parameter missing")
)
