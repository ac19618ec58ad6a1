package lite

import (
	"context"

	"github.com/ib-77/faultline/pkg/rop"
	"github.com/ib-77/faultline/pkg/rop/core"
	"github.com/ib-77/faultline/pkg/rop/solo"
)

func Run[T, E any](ctx context.Context, inputCh <-chan rop.Result[T, E],
	engine core.Engine[T, T, E], lines int) <-chan rop.Result[T, E] {
	return core.Train(ctx, inputCh, engine, core.Handlers[T, T, E]{}, lines)
}

func RunWith[T, E any](ctx context.Context, inputCh <-chan rop.Result[T, E],
	engine core.Engine[T, T, E], handlers core.Handlers[T, T, E], lines int) <-chan rop.Result[T, E] {
	return core.Train(ctx, inputCh, engine, handlers, lines)
}

func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E],
	engine core.Engine[In, Out, E], lines int) <-chan rop.Result[Out, E] {
	return core.Train(ctx, inputCh, engine, core.Handlers[In, Out, E]{}, lines)
}

func TurnoutWith[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E],
	engine core.Engine[In, Out, E], handlers core.Handlers[In, Out, E], lines int) <-chan rop.Result[Out, E] {
	return core.Train(ctx, inputCh, engine, handlers, lines)
}

func Validate[T, E any](validate func(ctx context.Context, in T) (valid bool, failure E)) core.Engine[T, T, E] {
	return func(ctx context.Context, input rop.Result[T, E]) rop.Result[T, E] {
		return solo.AndValidate(ctx, input, validate)
	}
}

func Switch[In, Out, E any](onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) core.Engine[In, Out, E] {
	return func(ctx context.Context, input rop.Result[In, E]) rop.Result[Out, E] {
		return solo.Switch(ctx, input, onSuccess)
	}
}

func Map[In, Out, E any](onSuccess func(ctx context.Context, r In) Out) core.Engine[In, Out, E] {
	return func(ctx context.Context, input rop.Result[In, E]) rop.Result[Out, E] {
		return solo.Map(ctx, input, onSuccess)
	}
}

func Tee[T, E any](sideEffect func(ctx context.Context, r rop.Result[T, E])) core.Engine[T, T, E] {
	return func(ctx context.Context, input rop.Result[T, E]) rop.Result[T, E] {
		return solo.Tee(ctx, input, sideEffect)
	}
}

func DoubleTee[T, E any](onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err E)) core.Engine[T, T, E] {
	return func(ctx context.Context, input rop.Result[T, E]) rop.Result[T, E] {
		return solo.DoubleTee(ctx, input, onSuccess, onFailure)
	}
}

func Try[In, Out, E any](onTryExecute func(ctx context.Context, r In) (Out, error),
	conv rop.Conversion[error, E]) core.Engine[In, Out, E] {
	return func(ctx context.Context, input rop.Result[In, E]) rop.Result[Out, E] {
		return solo.Try(ctx, input, onTryExecute, conv)
	}
}

type FinallyHandlers[In, Out, E any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, err E) Out
}

// Finally reduces every result to Out. The returned channel closes when input
// is drained or ctx ends.
func Finally[In, Out, E any](ctx context.Context, input <-chan rop.Result[In, E],
	handlers FinallyHandlers[In, Out, E]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-input:
				if !ok {
					return
				}

				select {
				case out <- solo.Finally(ctx, r, handlers.OnSuccess, handlers.OnFailure):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
