// Package edf implements response-time analysis under earliest-deadline-
// first scheduling: interference is pruned by each interfering task's own
// demand-bound function, and priority inversion comes from longer-relative-
// deadline tasks holding a non-preemptive region open past the task under
// analysis's own deadline.
package edf
