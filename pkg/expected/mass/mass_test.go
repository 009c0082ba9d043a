package mass

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/outcome-kit/expected/pkg/expected"
)

func TestObserving_DeliversUnchangedOutcome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	observed := 0

	out := <-Observing(ctx, expected.MustSuccess[int, error](5),
		func(ctx context.Context, v int) { observed = v }, nil)

	if observed != 5 {
		t.Fatalf("expected callback to observe 5, got %d", observed)
	}
	if v, _ := out.Value(); v != 5 {
		t.Fatalf("expected outcome unchanged, got %d", v)
	}
}

func TestCatching_DeliversUnchangedOutcome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")

	var seen error
	out := <-Catching(ctx, expected.MustFailure[int, error](boom),
		func(ctx context.Context, e error) { seen = e }, nil)

	if !errors.Is(seen, boom) {
		t.Fatalf("expected callback to observe boom, got %v", seen)
	}
	if e, _ := out.Err(); !errors.Is(e, boom) {
		t.Fatalf("expected fault unchanged, got %v", e)
	}
}

func TestTransforming_MatchesBlockingForm(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ch, err := Transforming(ctx, expected.MustSuccess[int, error](42),
		func(ctx context.Context, v int) string { return strconv.Itoa(v) }, nil)
	if err != nil {
		t.Fatalf("expected transforming to start, got: %v", err)
	}

	out := <-ch
	if v, _ := out.Value(); v != "42" {
		t.Fatalf("expected \"42\", got %q", v)
	}
}

func TestTransforming_GuardFailsBeforeSpawning(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ch, err := Transforming(ctx, expected.MustSuccess[int, error](1),
		func(ctx context.Context, v int) error { return errors.New("x") }, nil)
	if !errors.Is(err, expected.ErrInvalidVariantPair) {
		t.Fatalf("expected ErrInvalidVariantPair, got: %v", err)
	}
	if ch != nil {
		t.Fatalf("expected nil channel on guard failure")
	}
}

func TestTransformingError_MapsFault(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ch, err := TransformingError(ctx, expected.MustFailure[int, error](errors.New("boom")),
		func(ctx context.Context, e error) string { return "mapped: " + e.Error() }, nil)
	if err != nil {
		t.Fatalf("expected transforming to start, got: %v", err)
	}

	out := <-ch
	if e, _ := out.Err(); e != "mapped: boom" {
		t.Fatalf("expected mapped fault, got %q", e)
	}
}

func TestCancelledContext_RoutesToOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cancelled := false
	ch := Observing(ctx, expected.MustSuccess[int, error](1),
		func(ctx context.Context, v int) { t.Error("callback must not run") },
		func(ctx context.Context, in expected.Expected[int, error]) { cancelled = true })

	if _, ok := <-ch; ok {
		t.Fatalf("expected no outcome after cancellation")
	}
	if !cancelled {
		t.Fatalf("expected onCancel to run")
	}
}

func TestFinalizing_ReducesAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	got := <-Finalizing(ctx, expected.MustSuccess[int, error](3),
		FinallyHandlers[int, error, string]{
			OnSuccess: func(ctx context.Context, v int) string { return "v:" + strconv.Itoa(v) },
			OnFault:   func(ctx context.Context, e error) string { return "e" },
			OnCancel:  func(ctx context.Context, in expected.Expected[int, error]) string { return "c" },
		})

	if got != "v:3" {
		t.Fatalf("expected v:3, got %q", got)
	}
}

func TestFinalizing_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := <-Finalizing(ctx, expected.MustSuccess[int, error](3),
		FinallyHandlers[int, error, string]{
			OnSuccess: func(ctx context.Context, v int) string { return "v" },
			OnFault:   func(ctx context.Context, e error) string { return "e" },
			OnCancel:  func(ctx context.Context, in expected.Expected[int, error]) string { return "c" },
		})

	if got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
}
