package solo

import (
	"context"
	"errors"

	"github.com/ib-77/rustlike/pkg/rop"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.MakeOk[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.MakeErr[T, E](err)
}

func Empty[T, E any]() rop.Result[T, E] {
	return rop.None[T, E]()
}

// pass carries a non-Ok input over to a result with another Ok type.
func pass[In, Out, E any](input rop.Result[In, E]) rop.Result[Out, E] {
	if err, ok := input.Err(); ok {
		return rop.MakeErr[Out](err)
	}
	return rop.None[Out, E]()
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T, error] {
	return AndValidate(ctx, Succeed[T, error](input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T, error] {

	if v, ok := input.Ok(); ok {
		if isValid, errMsg := validate(ctx, v); isValid {
			return input
		} else {
			return rop.MakeErr[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T, error],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T, error]) rop.Result[T, error]) rop.Result[T, error] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T, error]) rop.Result[T, error] {

			if e, failed := current.Err(); failed {
				errs := rop.GetErrors(err)
				errs = append(errs, e)
				err = errors.Join(errs...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.MakeErr[T](err)
		},
		inputsF...,
	)
}

// Switch feeds an Ok payload to onSuccess. None and Err pass through.
func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if v, ok := input.Ok(); ok {
		return onSuccess(ctx, v)
	}
	return pass[In, Out](input)
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if v, ok := input.Ok(); ok {
		return rop.MakeOk[Out, E](onSuccess(ctx, v))
	}
	return pass[In, Out](input)
}

func MapErr[T, In, Out any](ctx context.Context,
	input rop.Result[T, In],
	onError func(ctx context.Context, err In) Out) rop.Result[T, Out] {

	switch {
	case input.IsOk():
		return rop.MakeOk[T, Out](input.MustOk())
	case input.IsErr():
		return rop.MakeErr[T](onError(ctx, input.MustErr()))
	default:
		return rop.None[T, Out]()
	}
}

func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsOk() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T, E any](ctx context.Context,
	input rop.Result[T, E],
	condition func(ctx context.Context, r rop.Result[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsOk() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E),
	onNone func(ctx context.Context)) rop.Result[T, E] {

	input.Match(
		func() { onNone(ctx) },
		func(v T) { onSuccess(ctx, v) },
		func(err E) { onError(ctx, err) },
	)

	return input
}

func Try[In, Out any](ctx context.Context, input rop.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out, error] {

	if v, ok := input.Ok(); ok {
		out, err := onTryExecute(ctx, v)
		return rop.FromTuple(out, err)
	}
	return pass[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T, error] {
	if v, ok := input.Ok(); ok {
		err := maybeErr(ctx, v)
		if err != nil {
			return rop.MakeErr[T](err)
		} else {
			return input
		}
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out,
	onNone func(ctx context.Context) Out) Out {

	var out Out
	input.Match(
		func() { out = onNone(ctx) },
		func(v In) { out = onSuccess(ctx, v) },
		func(err E) { out = onError(ctx, err) },
	)
	return out
}

// Or returns the first Ok result. Without one it returns the first Err, and
// None only when every input is None.
func Or[T, E any](inputs ...rop.Result[T, E]) rop.Result[T, E] {
	var firstErr rop.Result[T, E]
	for _, in := range inputs {
		if in.IsOk() {
			return in
		}
		if in.IsErr() && firstErr.IsNone() {
			firstErr = in
		}
	}
	return firstErr
}

// Collect gathers the Ok payloads in order and stops at the first result that
// is not Ok.
func Collect[T, E any](inputs ...rop.Result[T, E]) rop.Result[[]T, E] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		v, ok := in.Ok()
		if !ok {
			return pass[T, []T](in)
		}
		values = append(values, v)
	}
	return rop.MakeOk[[]T, E](values)
}

func Join[T, E any](ctx context.Context,
	input rop.Result[T, E],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T, E]) rop.Result[T, E],
	inputsF ...func(ctx context.Context, in rop.Result[T, E]) rop.Result[T, E]) rop.Result[T, E] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsOk() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsErr() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
