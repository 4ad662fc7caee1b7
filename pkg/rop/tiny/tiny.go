package tiny

import (
	"context"

	"github.com/ib-77/rustlike/pkg/rop"
	"github.com/ib-77/rustlike/pkg/rop/solo"
)

type Chain[T, E any] struct {
	ctx context.Context
	res rop.Result[T, E]
}

func Start[T, E any](ctx context.Context, r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, rop.MakeOk[T, E](v))
}

func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

// Then composes functions that already return rop.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T, E]) Chain[T, E] {
	v, ok := c.res.Ok()
	if !ok {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, v)}
}

func (c Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if !c.res.IsOk() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		v, ok := c.res.Ok()
		if !ok || !until(c.ctx, v) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for c.res.IsOk() && while(c.ctx, c.res.MustOk()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first chain holding an Ok result, else the first Err, else c.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	candidates := append([]Chain[T, E]{c}, alternatives...)

	var failed *Chain[T, E]
	for i := range candidates {
		ch := candidates[i]
		if ch.res.IsOk() {
			return ch
		}
		if ch.res.IsErr() && failed == nil {
			failed = &candidates[i]
		}
	}

	if failed != nil {
		return *failed
	}
	return c
}

// And returns the first chain that is not Ok, else the last one.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if !ch.res.IsOk() {
			return ch
		}
		last = ch
	}
	return last
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects for the current state without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E),
	onNone func(context.Context)) Chain[T, E] {

	c.res.Match(
		func() {
			if onNone != nil {
				onNone(c.ctx)
			}
		},
		func(v T) {
			if onSuccess != nil {
				onSuccess(c.ctx, v)
			}
		},
		func(err E) {
			if onFailure != nil {
				onFailure(c.ctx, err)
			}
		},
	)
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T, E]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, E) T,
	onNone func(context.Context) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure, onNone)
}
