// Package rtaiter provides the lazy sequence plumbing shared by every step
// function in the engine: merging sorted, duplicate-laden step streams into
// one sorted unique stream, and a brute-force step oracle used only as a
// test reference (never on the hot path).
package rtaiter
