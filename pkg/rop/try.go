package rop

import (
	"github.com/google/uuid"
	"github.com/ib-77/rustlike/internal/contract"
	"go.uber.org/zap"
)

// Scope is the early-return target of one Do call. R is the result type the
// enclosing function returns, so only results of that type can leave through
// the scope.
type Scope[R any] struct {
	id     uuid.UUID
	closed bool
}

func (s *Scope[R]) ID() uuid.UUID {
	return s.id
}

type unwind[R any] struct {
	id  uuid.UUID
	res R
}

// Do runs body. When a Check inside body meets a failing result, body stops
// and Do returns that result as it was.
//
//	func parse(in string) rop.Result[int, string] {
//		return rop.Do(func(s *rop.Scope[rop.Result[int, string]]) rop.Result[int, string] {
//			n := rop.Try(s, atoi(in))
//			return rop.MakeOk[int, string](n * 2)
//		})
//	}
func Do[R any](body func(s *Scope[R]) R) (out R) {
	s := &Scope[R]{id: uuid.New()}

	defer func() {
		s.closed = true

		p := recover()
		if p == nil {
			return
		}
		u, ok := p.(*unwind[R])
		if !ok || u.id != s.id {
			panic(p)
		}
		out = u.res
	}()

	return body(s)
}

// Check returns *ok, or unwinds s with r when ok is nil. It is the building
// block for Try helpers of result types that expose GetOk.
func Check[T, R any](s *Scope[R], r R, ok *T) T {
	contract.Require(s != nil && !s.closed, "rop.Check", "scope used outside its Do",
		zap.Bool("nil_scope", s == nil))

	if ok == nil {
		panic(&unwind[R]{id: s.id, res: r})
	}
	return *ok
}

// Try unwraps an Ok result or returns r from the enclosing Do.
func Try[T, E any](s *Scope[Result[T, E]], r Result[T, E]) T {
	return Check(s, r, r.GetOk())
}

// TryInto is Try for a result whose Ok type differs from the scope's. A
// failing r is converted with its state and Err payload kept.
func TryInto[U, T, E any](s *Scope[Result[T, E]], r Result[U, E]) U {
	if ok := r.GetOk(); ok != nil {
		return *ok
	}
	return Check[U](s, Result[T, E]{err: r.err, state: r.state}, nil)
}
