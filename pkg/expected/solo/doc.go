// Package solo contains single-value, blocking combinators that operate on
// Expected[T, E]. Each combinator evaluates its callback at most once,
// synchronously within the call, and never mutates the input outcome.
//
// Highlights:
// - Succeed/Fail: construct Expected[T, E]
// - AndThen/OrElse: observe the held variant without changing the outcome
// - Transform/TransformError: replace one side, propagate the other untouched
// - Try: call a function (Out, error) and convert error to a fault
// - Finally: reduce to a concrete value via success/fault handlers
//
// The channel-based forms in package mass are built over these same
// primitives, so both forms observe identical ordering.
package solo
