// Package duration defines the unit-convenient newtypes shared across the
// response-time-analysis engine: Duration itself, and the WCET/Deadline/
// Priority wrappers used by model.Task.
//
// All arithmetic in the engine is integer; Duration never goes negative in
// a value that crosses a package boundary — constructors validate this at
// the edge, and internal algebra that could dip below zero clamps with
// duration.Max(0, ...) at the call site instead of inside this package.
package duration
