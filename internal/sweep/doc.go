// Package sweep coordinates interactive parameter exploration. A
// Controller owns the live parameter set for the active scenario,
// clamps every edit to its declared bounds, and keeps at most one
// computation in flight. Edits that land while a computation runs are
// coalesced: the in-flight result is discarded and a single recompute
// starts from the latest values.
//
// A Controller is not safe for concurrent use. Drive it from one
// goroutine (the TUI update loop) and feed completions back through
// Resolve from that same goroutine.
package sweep
