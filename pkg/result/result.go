package result

import (
	"context"

	"github.com/outcome-kit/expected/pkg/expected"
	"github.com/outcome-kit/expected/pkg/expected/mass"
	"github.com/outcome-kit/expected/pkg/expected/solo"
)

// Unit is the payload marker for results that carry no value.
type Unit struct{}

// Result is the caller-facing outcome: an Expected specialized so the fault
// side is always a diagnostic *Fault. The payload type T must not itself be
// a fault or an interface a fault satisfies (error, for one); constructors
// panic on such pairs, since that is a programming error, not runtime state.
type Result[T any] struct {
	exp expected.Expected[T, *Fault]
}

// Ok wraps a successful payload.
func Ok[T any](v T) Result[T] {
	return Result[T]{exp: expected.MustSuccess[T, *Fault](v)}
}

// Err wraps a fault.
func Err[T any](f *Fault) Result[T] {
	return Result[T]{exp: expected.MustFailure[T, *Fault](f)}
}

// Done is the successful no-payload result.
func Done() Result[Unit] {
	return Ok(Unit{})
}

// Try folds a conventional (value, error) pair into a Result, classifying
// the error via FromError.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](FromError(err))
	}
	return Ok(v)
}

// IsSuccessful reports whether the result holds a payload.
func (r Result[T]) IsSuccessful() bool {
	return r.exp.HasValue()
}

// Value returns the payload, or ErrWrongVariantAccess for a failed result.
func (r Result[T]) Value() (T, error) {
	return r.exp.Value()
}

// Fault returns the held fault, or nil for a successful result.
func (r Result[T]) Fault() *Fault {
	f, err := r.exp.Err()
	if err != nil {
		return nil
	}
	return f
}

// ErrorMessage returns the fault message, or "" for a successful result.
func (r Result[T]) ErrorMessage() string {
	if f := r.Fault(); f != nil {
		return f.Message
	}
	return ""
}

// ValueOr returns the payload when present, def otherwise.
func (r Result[T]) ValueOr(def T) T {
	return r.exp.ValueOr(def)
}

// Expected exposes the underlying outcome for callers composing with the
// expected combinators directly.
func (r Result[T]) Expected() expected.Expected[T, *Fault] {
	return r.exp
}

// AndThen invokes onSuccess with the payload when present and returns the
// result unchanged.
func (r Result[T]) AndThen(ctx context.Context, onSuccess func(ctx context.Context, v T)) Result[T] {
	return Result[T]{exp: solo.AndThen(ctx, r.exp, onSuccess)}
}

// OrElse invokes onFault with the fault when present and returns the result
// unchanged.
func (r Result[T]) OrElse(ctx context.Context, onFault func(ctx context.Context, f *Fault)) Result[T] {
	return Result[T]{exp: solo.OrElse(ctx, r.exp, onFault)}
}

// Transform replaces the payload with onSuccess(value); a failed result is
// re-wrapped with its fault untouched. Panics when Out is a fault-like type
// (same contract as the constructors).
func Transform[In, Out any](ctx context.Context, r Result[In],
	onSuccess func(ctx context.Context, v In) Out) Result[Out] {

	out, err := solo.Transform(ctx, r.exp, onSuccess)
	if err != nil {
		panic(err)
	}
	return Result[Out]{exp: out}
}

// TransformFault replaces the fault with onFault(fault); a successful result
// passes through untouched.
func TransformFault[T any](ctx context.Context, r Result[T],
	onFault func(ctx context.Context, f *Fault) *Fault) Result[T] {

	f := r.Fault()
	if f == nil {
		return r
	}
	return Err[T](onFault(ctx, f))
}

// Finally collapses the result into a concrete value via the matching handler.
func Finally[T, Out any](ctx context.Context, r Result[T],
	onSuccess func(ctx context.Context, v T) Out,
	onFault func(ctx context.Context, f *Fault) Out) Out {

	return solo.Finally(ctx, r.exp, onSuccess, onFault)
}

// Observing is the channel form of AndThen.
func Observing[T any](ctx context.Context, r Result[T],
	onSuccess func(ctx context.Context, v T)) <-chan Result[T] {

	out := make(chan Result[T], 1)
	go func() {
		defer close(out)
		for exp := range mass.Observing(ctx, r.exp, onSuccess, nil) {
			out <- Result[T]{exp: exp}
		}
	}()
	return out
}

// Transforming is the channel form of Transform. The variant-pair guard runs
// before any goroutine is spawned, matching the blocking form.
func Transforming[In, Out any](ctx context.Context, r Result[In],
	onSuccess func(ctx context.Context, v In) Out) (<-chan Result[Out], error) {

	ch, err := mass.Transforming(ctx, r.exp, onSuccess, nil)
	if err != nil {
		return nil, err
	}

	out := make(chan Result[Out], 1)
	go func() {
		defer close(out)
		for exp := range ch {
			out <- Result[Out]{exp: exp}
		}
	}()
	return out, nil
}
