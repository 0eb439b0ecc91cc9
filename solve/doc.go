// Package solve implements the fixed-point inequality solver that drives
// every busy-window and response-time computation in the engine: find the
// least x >= seed with lhs(x) >= rhs(x), given both functions monotone
// non-decreasing and rhs growing no faster than lhs beyond the fixed
// point.
package solve
