// Package fifo implements response-time analysis for first-in-first-out
// scheduling: no priorities, no blocking, every task interferes with
// every other equally. It is the simplest of the three policy drivers and
// the one against which fp and edf specialize their own blocking terms.
package fifo
