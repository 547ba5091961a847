package solo

import (
	"context"
	"errors"

	"github.com/ib-77/expected/pkg/expected"
)

func Succeed[T any](input T) expected.Outcome[T] {
	return expected.Of(input)
}

func Fail[T any](err error) expected.Outcome[T] {
	return expected.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) expected.Outcome[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input expected.Outcome[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) expected.Outcome[T] {

	if !input.IsPresent() {
		return input
	}

	return expected.FromCode(func() expected.Outcome[T] {
		if isValid, errMsg := validate(ctx, input.Get()); !isValid {
			return expected.Fail[T](errors.New(errMsg))
		}
		return input
	})
}

// ValidateAll runs every validator against a present input and joins the
// errors into one flat list. With breakOnError it stops at the first failing
// validator.
func ValidateAll[T any](ctx context.Context,
	input expected.Outcome[T],
	breakOnError bool,
	validators ...func(ctx context.Context, in T) error) expected.Outcome[T] {

	if !input.IsPresent() || len(validators) == 0 {
		return input
	}

	var errs []error
	for _, validate := range validators {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		checked := expected.FromCode(func() expected.Outcome[T] {
			if err := validate(ctx, input.Get()); err != nil {
				return expected.Fail[T](err)
			}
			return input
		})

		if !checked.IsPresent() {
			errs = append(errs, expected.GetErrors(checked.Failure().Unwrap())...)
			if breakOnError {
				break
			}
		}
	}

	switch len(errs) {
	case 0:
		return input
	case 1:
		return expected.Fail[T](errs[0])
	default:
		return expected.Fail[T](errors.Join(errs...))
	}
}

func Switch[In any, Out any](ctx context.Context,
	input expected.Outcome[In],
	onSuccess func(ctx context.Context, r In) expected.Outcome[Out]) expected.Outcome[Out] {

	if !input.IsPresent() {
		return expected.FromFailure[Out](input.Failure())
	}

	return expected.FromCode(func() expected.Outcome[Out] {
		return onSuccess(ctx, input.Get())
	})
}

func Map[In any, Out any](ctx context.Context,
	input expected.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out) expected.Outcome[Out] {

	return Switch(ctx, input, func(ctx context.Context, r In) expected.Outcome[Out] {
		return expected.Of(onSuccess(ctx, r))
	})
}

func Try[In any, Out any](ctx context.Context, input expected.Outcome[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) expected.Outcome[Out] {

	return Switch(ctx, input, func(ctx context.Context, r In) expected.Outcome[Out] {
		out, err := onTryExecute(ctx, r)
		return expected.FromPair(out, err)
	})
}

// Tee runs a side effect on present input. A panicking side effect turns
// the result into a failure.
func Tee[T any](ctx context.Context,
	input expected.Outcome[T],
	onSuccess func(ctx context.Context, r expected.Outcome[T])) expected.Outcome[T] {

	if !input.IsPresent() {
		return input
	}

	return expected.FromCode(func() expected.Outcome[T] {
		onSuccess(ctx, input)
		return input
	})
}

func DoubleTee[T any](ctx context.Context, input expected.Outcome[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) expected.Outcome[T] {

	if input.IsPresent() {
		onSuccess(ctx, input.Get())
	} else if expected.IsCancellationError(input.Err()) {
		onCancel(ctx, input.Err())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

// Recover replaces a failure with the value returned by onFailure.
func Recover[T any](ctx context.Context, input expected.Outcome[T],
	onFailure func(ctx context.Context, err error) T) expected.Outcome[T] {

	if input.IsPresent() {
		return input
	}

	return expected.FromCode(func() expected.Outcome[T] {
		return expected.Of(onFailure(ctx, input.Err()))
	})
}

func FailOnError[T any](ctx context.Context, input expected.Outcome[T],
	maybeErr func(ctx context.Context, in T) error) expected.Outcome[T] {

	return Switch(ctx, input, func(ctx context.Context, r T) expected.Outcome[T] {
		if err := maybeErr(ctx, r); err != nil {
			return expected.Fail[T](err)
		}
		return input
	})
}

// Finally collapses input to Out. onCancel handles failures caused by
// context cancellation or deadline.
func Finally[In, Out any](ctx context.Context, input expected.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsPresent() {
		return onSuccess(ctx, input.Get())
	} else if expected.IsCancellationError(input.Err()) {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}
