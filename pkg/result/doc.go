// Package result provides the caller-facing result facade: Expected
// outcomes specialized with *Fault as the diagnostic error payload.
//
// Key operations:
// - Ok/Err/Done/Try: construct a Result[T] (Done for the no-payload form)
// - IsSuccessful/Value/Fault/ErrorMessage/ValueOr: inspect the outcome
// - AndThen/OrElse: observe a side without changing the result
// - Transform/TransformFault/Finally: replace one side or collapse
// - Observing/Transforming: channel-based forms of the above
//
// Faults carry a Category used by transport adapters (render, grpcx) to
// select a wire status; the cause itself is never inspected further.
package result
