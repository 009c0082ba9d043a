package mass

import (
	"context"

	"github.com/outcome-kit/expected/pkg/expected"
	"github.com/outcome-kit/expected/pkg/expected/solo"
)

// Each combinator here delegates to the matching solo primitive inside a
// producer goroutine and forwards the single outcome through a select that
// honors ctx.Done(). When the context wins the race, the optional onCancel
// callback receives the untouched input and the output channel is closed
// without delivering an outcome.

func Observing[T, E any](ctx context.Context, input expected.Expected[T, E],
	onSuccess func(ctx context.Context, v T),
	onCancel func(ctx context.Context, in expected.Expected[T, E])) <-chan expected.Expected[T, E] {

	ch := make(chan expected.Expected[T, E])
	out := make(chan expected.Expected[T, E])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.AndThen(ctx, input, onSuccess)
		}
	}()

	go forward(ctx, input, ch, out, onCancel)

	return out
}

func Catching[T, E any](ctx context.Context, input expected.Expected[T, E],
	onFault func(ctx context.Context, e E),
	onCancel func(ctx context.Context, in expected.Expected[T, E])) <-chan expected.Expected[T, E] {

	ch := make(chan expected.Expected[T, E])
	out := make(chan expected.Expected[T, E])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.OrElse(ctx, input, onFault)
		}
	}()

	go forward(ctx, input, ch, out, onCancel)

	return out
}

// Transforming is the channel form of solo.Transform. The pair guard for the
// new payload type runs eagerly, before any goroutine is spawned, so both
// forms agree on guard failures.
func Transforming[In, Out, E any](ctx context.Context, input expected.Expected[In, E],
	onSuccess func(ctx context.Context, v In) Out,
	onCancel func(ctx context.Context, in expected.Expected[In, E])) (<-chan expected.Expected[Out, E], error) {

	if err := expected.CheckPair[Out, E](); err != nil {
		return nil, err
	}

	ch := make(chan expected.Expected[Out, E])
	out := make(chan expected.Expected[Out, E])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			mapped, _ := solo.Transform(ctx, input, onSuccess)
			ch <- mapped
		}
	}()

	go forward(ctx, input, ch, out, onCancel)

	return out, nil
}

// TransformingError is the channel form of solo.TransformError.
func TransformingError[T, In, Out any](ctx context.Context, input expected.Expected[T, In],
	onFault func(ctx context.Context, e In) Out,
	onCancel func(ctx context.Context, in expected.Expected[T, In])) (<-chan expected.Expected[T, Out], error) {

	if err := expected.CheckPair[T, Out](); err != nil {
		return nil, err
	}

	ch := make(chan expected.Expected[T, Out])
	out := make(chan expected.Expected[T, Out])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			mapped, _ := solo.TransformError(ctx, input, onFault)
			ch <- mapped
		}
	}()

	go forward(ctx, input, ch, out, onCancel)

	return out, nil
}

// FinallyHandlers bundles the reduction callbacks for Finalizing.
type FinallyHandlers[T, E, Out any] struct {
	OnSuccess func(ctx context.Context, v T) Out
	OnFault   func(ctx context.Context, e E) Out
	OnCancel  func(ctx context.Context, in expected.Expected[T, E]) Out
}

// Finalizing collapses the outcome asynchronously. When the context is done
// before the reduction runs, OnCancel produces the delivered value instead.
func Finalizing[T, E, Out any](ctx context.Context, input expected.Expected[T, E],
	handlers FinallyHandlers[T, E, Out]) <-chan Out {

	ch := make(chan Out)
	out := make(chan Out)

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.Finally(ctx, input, handlers.OnSuccess, handlers.OnFault)
		}
	}()

	go func() {
		defer close(out)

		select {
		case v, ok := <-ch:
			if ok {
				out <- v
			} else if handlers.OnCancel != nil {
				out <- handlers.OnCancel(ctx, input)
			}
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				out <- handlers.OnCancel(ctx, input)
			}
		}
	}()

	return out
}

// forward relays the produced outcome to out, falling back to onCancel when
// the producer lost the race against the context. Input and output outcome
// types are independent so type-changing stages can reuse it.
func forward[InT, InE, OutT, OutE any](ctx context.Context, input expected.Expected[InT, InE],
	ch <-chan expected.Expected[OutT, OutE], out chan<- expected.Expected[OutT, OutE],
	onCancel func(ctx context.Context, in expected.Expected[InT, InE])) {

	defer close(out)

	select {
	case pr, ok := <-ch:
		if ok {
			out <- pr
		} else {
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	case <-ctx.Done():
		if onCancel != nil {
			onCancel(ctx, input)
		}
	}
}
