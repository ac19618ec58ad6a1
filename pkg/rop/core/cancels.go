package core

import (
	"context"

	"github.com/ib-77/faultline/pkg/rop"
	"github.com/ib-77/faultline/pkg/rop/kind"
)

// DrainRemaining returns an OnCancel handler that hands every value still
// queued on the input to onRemaining. It returns once the input is closed.
func DrainRemaining[In, E any](onRemaining func(ctx context.Context, in rop.Result[In, E])) func(
	ctx context.Context, inputCh <-chan rop.Result[In, E]) {

	return func(ctx context.Context, inputCh <-chan rop.Result[In, E]) {
		for in := range inputCh {
			onRemaining(ctx, in)
		}
	}
}

// Interrupted is the failure reported for a value left unprocessed by
// cancellation.
func Interrupted(ctx context.Context, op string) *kind.Error {
	return kind.Wrap(op, "", context.Cause(ctx))
}
