// Package model defines the step-function algebra the analysis packages
// are built on: arrival models bounding job releases, supply models
// bounding guaranteed processing capacity, execution models bounding
// preemption, request/demand-bound functions derived from them, and the
// Task/TaskSet types that tie a workload together.
//
// Every model here is immutable once constructed and safe for concurrent
// read-only use; construction validates its parameters and returns a
// sentinel error rather than panicking or producing a partially valid
// value.
package model
