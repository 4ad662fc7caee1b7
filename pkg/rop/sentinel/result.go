package sentinel

import (
	"fmt"

	"github.com/ib-77/rustlike/internal/contract"
	"github.com/ib-77/rustlike/pkg/rop"
	"github.com/ib-77/rustlike/pkg/rop/mem"
	"go.uber.org/zap"
)

// Sentinel is implemented by zero-size marker types that name the error value
// meaning success.
type Sentinel[E comparable] interface {
	Sentinel() E
}

// Result is Ok when its tag equals the sentinel of S and Err otherwise. The
// Ok payload is only meaningful while the result is Ok.
//
// The zero value has the zero value of E as its tag: it is an Ok holding the
// zero value of T when the sentinel is E's zero value, and an Err otherwise.
type Result[T any, E comparable, S Sentinel[E]] struct {
	tag E
	ok  T
}

func sentinelOf[E comparable, S Sentinel[E]]() E {
	var s S
	return s.Sentinel()
}

// Ok builds an Ok result holding v.
func Ok[T any, E comparable, S Sentinel[E]](v T) Result[T, E, S] {
	return Result[T, E, S]{tag: sentinelOf[E, S](), ok: v}
}

// Err builds an Err result tagged with e. e must not be the sentinel.
func Err[T any, E comparable, S Sentinel[E]](e E) Result[T, E, S] {
	contract.Require(e != sentinelOf[E, S](), "sentinel.Err", "error value equals the sentinel",
		zap.Any("tag", e))
	return Result[T, E, S]{tag: e}
}

func (r Result[T, E, S]) SentinelValue() E {
	return sentinelOf[E, S]()
}

func (r Result[T, E, S]) IsOk() bool {
	return r.tag == sentinelOf[E, S]()
}

func (r Result[T, E, S]) IsErr() bool {
	return r.tag != sentinelOf[E, S]()
}

// Tag returns the error value. For an Ok result that is the sentinel, so
// callers that need to tell the two apart check IsOk first.
func (r Result[T, E, S]) Tag() E {
	return r.tag
}

func (r *Result[T, E, S]) GetOk() *T {
	if !r.IsOk() {
		return nil
	}
	return &r.ok
}

// GetErr returns a pointer to the tag of an Err result, or nil.
func (r *Result[T, E, S]) GetErr() *E {
	if !r.IsErr() {
		return nil
	}
	return &r.tag
}

func (r Result[T, E, S]) Match(onOk func(T), onErr func(E)) {
	if r.IsOk() {
		if onOk != nil {
			onOk(r.ok)
		}
		return
	}
	if onErr != nil {
		onErr(r.tag)
	}
}

func (r *Result[T, E, S]) MatchMut(onOk func(*T), onErr func(*E)) {
	if ok := r.GetOk(); ok != nil {
		if onOk != nil {
			onOk(ok)
		}
		return
	}
	if onErr != nil {
		onErr(r.GetErr())
	}
}

// MustOk returns the payload. Calling it on an Err result is a bug.
func (r Result[T, E, S]) MustOk() T {
	if r.IsErr() {
		contract.Fail("sentinel.Result.MustOk", "result is Err", zap.Any("tag", r.tag))
	}
	return r.ok
}

// Take moves the result out of r. r is left Ok with the zero value of T.
func (r *Result[T, E, S]) Take() Result[T, E, S] {
	return mem.Replace(r, Result[T, E, S]{tag: sentinelOf[E, S]()})
}

func (r Result[T, E, S]) String() string {
	if r.IsOk() {
		return fmt.Sprintf("Ok(%v)", r.ok)
	}
	return fmt.Sprintf("Err(%v)", r.tag)
}

// Try unwraps an Ok result or returns r from the enclosing rop.Do.
func Try[T any, E comparable, S Sentinel[E]](s *rop.Scope[Result[T, E, S]], r Result[T, E, S]) T {
	return rop.Check(s, r, r.GetOk())
}

// TryInto is Try for a result whose Ok type differs from the scope's. A
// failing r keeps its tag.
func TryInto[U, T any, E comparable, S Sentinel[E]](s *rop.Scope[Result[T, E, S]], r Result[U, E, S]) U {
	if ok := r.GetOk(); ok != nil {
		return *ok
	}
	return rop.Check[U](s, Result[T, E, S]{tag: r.tag}, nil)
}
