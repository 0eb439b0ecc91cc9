// Package fp implements response-time analysis under fixed-priority
// scheduling: a task under analysis suffers interference from every task
// of equal or higher priority, plus a bounded priority-inversion term from
// lower-priority non-preemptive work.
package fp
