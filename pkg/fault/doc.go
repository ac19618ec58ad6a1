// Package fault implements the unrecoverable failure path: a Signal raised at
// a fault site that either unwinds enclosing scopes, running their registered
// cleanups innermost first, or terminates the process immediately.
//
// The behaviour is chosen once per process with SetMode:
//   - Unwind (default): Raise panics with a *Signal; every Scoped block between
//     the fault site and the nearest boundary runs its cleanups.
//   - Abort: Raise terminates the process without running any cleanup.
//
// A Signal is never turned back into ordinary control flow. Catch ends the
// current unit of work in an embedding host and hands the Signal to the
// caller; Main is the process boundary and exits with ExitFault.
package fault
