package solo

import (
	"context"

	"github.com/outcome-kit/expected/pkg/expected"
)

func Succeed[T, E any](input T) (expected.Expected[T, E], error) {
	return expected.Success[T, E](input)
}

func Fail[T, E any](fault E) (expected.Expected[T, E], error) {
	return expected.Failure[T, E](fault)
}

// AndThen invokes onSuccess with the held value when the success variant is
// populated. The outcome itself is returned unchanged either way; onSuccess
// observes, it does not transform.
func AndThen[T, E any](ctx context.Context, input expected.Expected[T, E],
	onSuccess func(ctx context.Context, v T)) expected.Expected[T, E] {

	if v, err := input.Value(); err == nil {
		onSuccess(ctx, v)
	}

	return input
}

// OrElse invokes onFault with the held fault when the fault variant is
// populated. The outcome itself is returned unchanged either way.
func OrElse[T, E any](ctx context.Context, input expected.Expected[T, E],
	onFault func(ctx context.Context, e E)) expected.Expected[T, E] {

	if e, err := input.Err(); err == nil {
		onFault(ctx, e)
	}

	return input
}

// Transform replaces the success payload with onSuccess(value), producing an
// outcome of the new payload type with the same fault type. A fault variant
// is re-wrapped untouched. It fails with ErrInvalidVariantPair when Out and E
// are related types.
func Transform[In, Out, E any](ctx context.Context, input expected.Expected[In, E],
	onSuccess func(ctx context.Context, v In) Out) (expected.Expected[Out, E], error) {

	if err := expected.CheckPair[Out, E](); err != nil {
		return expected.Expected[Out, E]{}, err
	}

	if v, err := input.Value(); err == nil {
		return expected.MustSuccess[Out, E](onSuccess(ctx, v)), nil
	}

	e, _ := input.Err()
	return expected.MustFailure[Out, E](e), nil
}

// TransformError replaces the fault payload with onFault(fault), producing an
// outcome of the new fault type with the same success type. A success variant
// is re-wrapped untouched. It fails with ErrInvalidVariantPair when T and Out
// are related types.
func TransformError[T, In, Out any](ctx context.Context, input expected.Expected[T, In],
	onFault func(ctx context.Context, e In) Out) (expected.Expected[T, Out], error) {

	if err := expected.CheckPair[T, Out](); err != nil {
		return expected.Expected[T, Out]{}, err
	}

	if v, err := input.Value(); err == nil {
		return expected.MustSuccess[T, Out](v), nil
	}

	e, _ := input.Err()
	return expected.MustFailure[T, Out](onFault(ctx, e)), nil
}

// Try calls onTryExecute with the held value and converts a returned error
// into a fault variant. Faults pass through untouched.
func Try[In, Out any](ctx context.Context, input expected.Expected[In, error],
	onTryExecute func(ctx context.Context, v In) (Out, error)) (expected.Expected[Out, error], error) {

	if err := expected.CheckPair[Out, error](); err != nil {
		return expected.Expected[Out, error]{}, err
	}

	if v, err := input.Value(); err == nil {
		out, err := onTryExecute(ctx, v)
		if err != nil {
			return expected.MustFailure[Out, error](err), nil
		}
		return expected.MustSuccess[Out, error](out), nil
	}

	e, _ := input.Err()
	return expected.MustFailure[Out, error](e), nil
}

// Finally collapses the outcome into a concrete value via the matching handler.
func Finally[T, E, Out any](ctx context.Context, input expected.Expected[T, E],
	onSuccess func(ctx context.Context, v T) Out,
	onFault func(ctx context.Context, e E) Out) Out {

	if v, err := input.Value(); err == nil {
		return onSuccess(ctx, v)
	}

	e, _ := input.Err()
	return onFault(ctx, e)
}
