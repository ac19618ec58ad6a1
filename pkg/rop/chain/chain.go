package chain

import (
	"context"

	"github.com/ib-77/faultline/pkg/fault"
	"github.com/ib-77/faultline/pkg/rop"
	"github.com/ib-77/faultline/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: rop.Success[T, E](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error), converting the error with conv
func ThenTry[T, U, E any](c *Chain[T, E], tryOnSuccess func(context.Context, T) (U, error),
	conv rop.Conversion[error, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess, conv),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// MapErr converts the failure type of the chain
func MapErr[T, E, F any](c *Chain[T, E], onFailure func(context.Context, E) F) *Chain[T, F] {
	return &Chain[T, F]{
		ctx:    c.ctx,
		result: solo.MapErr(c.ctx, c.result, onFailure),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result rop.Result[T, E]) {
				onSuccess(ctx, result.Result())
			}),
	}
}

// OnFailure performs a side effect on failure without changing the result
func (c *Chain[T, E]) OnFailure(onFailure func(context.Context, E)) *Chain[T, E] {
	if c.result.IsFailure() {
		onFailure(c.ctx, c.result.Err())
	}
	return c
}

// RepeatWhile applies step as long as the chain succeeds and while holds
// for the latest value.
func (c *Chain[T, E]) RepeatWhile(step func(context.Context, T) rop.Result[T, E],
	while func(context.Context, T) bool) *Chain[T, E] {

	cur := c
	for cur.result.IsSuccess() && while(cur.ctx, cur.result.Result()) {
		cur = Then(cur, step)
	}
	return cur
}

// Expect returns the value, raising a fault with msg on failure
func (c *Chain[T, E]) Expect(msg string) T {
	if !c.result.IsValid() {
		fault.RaiseAt(1, "use of a Result that was not built by Success or Fail")
	}
	if err, failed := c.result.Failure(); failed {
		fault.RaiseAt(1, msg+": "+rop.Display(err))
	}
	return c.result.Result()
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
