// Package analysis defines Solution, the immutable result type shared by
// every policy driver (analysis/fifo, analysis/fp, analysis/edf): a
// busy-window bound, the search space actually explored, and the derived
// response-time bound.
package analysis
