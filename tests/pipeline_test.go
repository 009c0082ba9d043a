package tests

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outcome-kit/expected/pkg/expected"
	"github.com/outcome-kit/expected/pkg/expected/solo"
	"github.com/outcome-kit/expected/pkg/render"
	"github.com/outcome-kit/expected/pkg/result"
)

func TestPipeline_OutcomeToResponse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// construct -> transform -> facade -> classify
	raw := expected.MustSuccess[int, error](42)

	text, err := solo.Transform(ctx, raw, func(_ context.Context, v int) string {
		return strconv.Itoa(v)
	})
	require.NoError(t, err)

	v, err := text.Value()
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	resp, err := render.Respond(result.Ok(v))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "42", string(resp.Body))
}

func TestPipeline_FaultClassificationEndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	lookup := result.Err[string](result.Faultf(result.CategoryNotFound, "order %d missing", 7))

	var observed *result.Fault
	lookup = lookup.OrElse(ctx, func(_ context.Context, f *result.Fault) { observed = f })
	require.NotNil(t, observed)
	assert.Equal(t, result.CategoryNotFound, observed.Category)

	resp, err := render.Respond(lookup)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "order 7 missing", string(resp.Body))
}

func TestPipeline_AsyncMatchesBlocking(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	blocking := result.Transform(ctx, result.Ok(6), func(_ context.Context, v int) string {
		return strconv.Itoa(v * 7)
	})

	ch, err := result.Transforming(ctx, result.Ok(6), func(_ context.Context, v int) string {
		return strconv.Itoa(v * 7)
	})
	require.NoError(t, err)
	async := <-ch

	bv, err := blocking.Value()
	require.NoError(t, err)
	av, err := async.Value()
	require.NoError(t, err)
	assert.Equal(t, bv, av)
}

func TestPipeline_GuardHoldsAcrossLayers(t *testing.T) {
	t.Parallel()

	// error is related to itself: refused at every entry point
	_, err := expected.Success[error, error](nil)
	require.ErrorIs(t, err, expected.ErrInvalidVariantPair)

	_, err = solo.Transform(context.Background(), expected.MustSuccess[int, error](1),
		func(_ context.Context, v int) error { return nil })
	require.ErrorIs(t, err, expected.ErrInvalidVariantPair)

	assert.Panics(t, func() {
		result.Transform(context.Background(), result.Ok(1),
			func(_ context.Context, v int) *result.Fault { return nil })
	})
}
