// Package mass contains channel-based, asynchronous forms of the solo
// combinators. Every function returns a channel that delivers at most one
// outcome and is then closed; cancellation via the context routes through an
// optional onCancel callback instead of delivering an outcome.
//
// Each callback still runs at most once, inside the producer goroutine that
// owns the value, so ordering semantics match the blocking forms exactly.
// The blocking forms are the primitives; this package never reimplements
// their logic.
package mass
