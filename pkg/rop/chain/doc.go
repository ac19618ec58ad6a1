// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T, E] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure/OnFailure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
// - Expect: collapse the chain at a process boundary, faulting on failure
package chain
