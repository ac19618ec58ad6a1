package solo

import (
	"context"

	"github.com/ib-77/faultline/pkg/rop"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Fail[T](err)
}

func Validate[T, E any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, failure E)) rop.Result[T, E] {
	return AndValidate(ctx, Succeed[T, E](input), validate)
}

func AndValidate[T, E any](ctx context.Context, input rop.Result[T, E],
	validate func(ctx context.Context, in T) (valid bool, failure E)) rop.Result[T, E] {

	if input.IsSuccess() {
		if valid, failure := validate(ctx, input.Result()); !valid {
			return rop.Fail[T](failure)
		}
	}
	return input
}

func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.Fail[Out](input.Err())
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Result()))
	}
	return rop.Fail[Out](input.Err())
}

func MapErr[T, E, F any](ctx context.Context,
	input rop.Result[T, E],
	onFailure func(ctx context.Context, err E) F) rop.Result[T, F] {

	return rop.MapErr(input, func(err E) F { return onFailure(ctx, err) })
}

func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}
	return input
}

func TeeIf[T, E any](ctx context.Context,
	input rop.Result[T, E],
	condition func(ctx context.Context, r rop.Result[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}
	return input
}

func DoubleTee[T, E any](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err E)) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onFailure(ctx, input.Err())
	}
	return input
}

// Try runs a Go-style step; its error is converted into E with conv.
func Try[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	conv rop.Conversion[error, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		return rop.FromPair(out, err, conv)
	}
	return rop.Fail[Out](input.Err())
}

func FailOnError[T, E any](ctx context.Context, input rop.Result[T, E],
	maybeErr func(ctx context.Context, in T) error,
	conv rop.Conversion[error, E]) rop.Result[T, E] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Result()); !rop.IsNil(err) {
			return rop.Fail[T](conv(err))
		}
	}
	return input
}

// Recover turns a failure into a success when onFailure can produce a value.
func Recover[T, E any](ctx context.Context, input rop.Result[T, E],
	onFailure func(ctx context.Context, err E) (T, bool)) rop.Result[T, E] {

	if input.IsFailure() {
		if v, ok := onFailure(ctx, input.Err()); ok {
			return rop.Success[T, E](v)
		}
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Err())
}
