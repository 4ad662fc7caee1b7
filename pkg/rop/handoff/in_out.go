package handoff

import (
	"context"

	"github.com/ib-77/rustlike/pkg/rop"
)

type Handlers[T, E any] struct {
	OnStartFail func(ctx context.Context, input []rop.Result[T, E])
	OnSent      func(ctx context.Context, index int)
	OnBreak     func(ctx context.Context, rest []rop.Result[T, E])
}

// Send moves *r into ch. On success *r is None; when ctx ends first *r is left
// untouched and Send returns false.
func Send[T, E any](ctx context.Context, ch chan<- rop.Result[T, E], r *rop.Result[T, E]) bool {
	if ctx.Err() != nil {
		return false
	}

	select {
	case ch <- *r:
		_ = r.Take()
		return true
	case <-ctx.Done():
		return false
	}
}

// ToChanMany moves every element of values into the returned channel in
// order. Delivered elements are reset to None; on cancellation the remaining
// ones are reported to OnBreak and stay as they were.
func ToChanMany[T, E any](ctx context.Context, handlers Handlers[T, E], values []rop.Result[T, E]) <-chan rop.Result[T, E] {
	in := make(chan rop.Result[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i := range values {
			if !Send(ctx, in, &values[i]) {
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
			if handlers.OnSent != nil {
				handlers.OnSent(ctx, i)
			}
		}
	}()

	return in
}

func FirstOrDefault[T, E any](ctx context.Context, out <-chan rop.Result[T, E], defaultV rop.Result[T, E]) rop.Result[T, E] {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

func FromChanMany[T, E any](ctx context.Context, out <-chan rop.Result[T, E]) []rop.Result[T, E] {
	res := make([]rop.Result[T, E], 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
