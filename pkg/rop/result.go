package rop

import (
	"fmt"

	"github.com/ib-77/rustlike/internal/contract"
	"github.com/ib-77/rustlike/pkg/rop/mem"
)

// State is the discriminant of a Result.
type State uint8

const (
	// StateNone marks a zero, taken or consumed Result.
	StateNone State = iota
	StateOk
	StateErr
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateOk:
		return "Ok"
	case StateErr:
		return "Err"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Result is either None, an Ok value of type T or an Err value of type E.
// The zero value is None.
type Result[T, E any] struct {
	ok    T
	err   E
	state State
}

func MakeOk[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: v, state: StateOk}
}

func MakeErr[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, state: StateErr}
}

func None[T, E any]() Result[T, E] {
	return Result[T, E]{}
}

func (r Result[T, E]) State() State {
	return r.state
}

func (r Result[T, E]) IsNone() bool {
	return r.state == StateNone
}

func (r Result[T, E]) IsOk() bool {
	return r.state == StateOk
}

func (r Result[T, E]) IsErr() bool {
	return r.state == StateErr
}

// Match calls the callback of the current state. A nil callback is skipped.
func (r Result[T, E]) Match(onNone func(), onOk func(T), onErr func(E)) {
	switch r.state {
	case StateOk:
		if onOk != nil {
			onOk(r.ok)
		}
	case StateErr:
		if onErr != nil {
			onErr(r.err)
		}
	default:
		if onNone != nil {
			onNone()
		}
	}
}

// MatchMut is Match with access to the live payload.
func (r *Result[T, E]) MatchMut(onNone func(), onOk func(*T), onErr func(*E)) {
	switch r.state {
	case StateOk:
		if onOk != nil {
			onOk(&r.ok)
		}
	case StateErr:
		if onErr != nil {
			onErr(&r.err)
		}
	default:
		if onNone != nil {
			onNone()
		}
	}
}

// GetOk returns a pointer to the Ok payload, or nil.
func (r *Result[T, E]) GetOk() *T {
	if r.state != StateOk {
		return nil
	}
	return &r.ok
}

// GetErr returns a pointer to the Err payload, or nil.
func (r *Result[T, E]) GetErr() *E {
	if r.state != StateErr {
		return nil
	}
	return &r.err
}

func (r Result[T, E]) Ok() (T, bool) {
	if r.state != StateOk {
		var zero T
		return zero, false
	}
	return r.ok, true
}

func (r Result[T, E]) Err() (E, bool) {
	if r.state != StateErr {
		var zero E
		return zero, false
	}
	return r.err, true
}

func (r Result[T, E]) OkOr(def T) T {
	if r.state != StateOk {
		return def
	}
	return r.ok
}

// MustOk returns the Ok payload. Calling it in any other state is a bug.
func (r Result[T, E]) MustOk() T {
	if r.state != StateOk {
		contract.Fail("Result.MustOk", "result is "+r.state.String())
	}
	return r.ok
}

// MustErr returns the Err payload. Calling it in any other state is a bug.
func (r Result[T, E]) MustErr() E {
	if r.state != StateErr {
		contract.Fail("Result.MustErr", "result is "+r.state.String())
	}
	return r.err
}

// Take moves the result out of r and leaves r None.
func (r *Result[T, E]) Take() Result[T, E] {
	return mem.Take(r)
}

// MapOk consumes r. An Ok result is replaced by fn(payload), anything else is
// returned unchanged.
func (r *Result[T, E]) MapOk(fn func(T) Result[T, E]) Result[T, E] {
	src := r.Take()
	if src.state != StateOk {
		return src
	}
	return fn(src.ok)
}

// MapErr consumes r. An Err result is replaced by fn(payload), anything else
// is returned unchanged.
func (r *Result[T, E]) MapErr(fn func(E) Result[T, E]) Result[T, E] {
	src := r.Take()
	if src.state != StateErr {
		return src
	}
	return fn(src.err)
}

func (r Result[T, E]) String() string {
	switch r.state {
	case StateOk:
		return fmt.Sprintf("Ok(%v)", r.ok)
	case StateErr:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "None"
	}
}

// FromTuple converts the (value, error) idiom. A typed nil error counts as no
// error.
func FromTuple[T any](v T, err error) Result[T, error] {
	if IsNil(err) {
		return MakeOk[T, error](v)
	}
	return MakeErr[T](err)
}

// ToTuple converts back to the (value, error) idiom. None reports ErrNone.
func ToTuple[T any](r Result[T, error]) (T, error) {
	var zero T
	switch r.state {
	case StateOk:
		return r.ok, nil
	case StateErr:
		return zero, r.err
	default:
		return zero, ErrNone
	}
}
