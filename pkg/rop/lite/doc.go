// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines. It is designed for simple fan-out/fan-in
// flows.
//
// Common usage:
// - Run: execute an engine over an input channel with a fixed number of lines
// - Validate/Try/Switch/Map/Tee: lift solo operations into engines
// - Turnout: compose stages with configurable parallelism
// - Finally: map Result[In, E] to Out on completion
//
// A fault raised inside a stage ends that unit of work only. Use RunWith or
// TurnoutWith to observe it through core.Handlers.
package lite
