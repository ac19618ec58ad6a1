// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T, E]. These functions form the core building blocks for
// failure-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/MapErr: transform the success payload or the failure
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Recover: turn a failure back into a success
// - Finally: reduce to a concrete value via success/failure handlers
package solo
