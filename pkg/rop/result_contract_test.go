//go:build !rop_unchecked

package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustOk_WrongStatePanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "rop: Result.MustOk: result is None", func() {
		None[int, string]().MustOk()
	})
	assert.PanicsWithError(t, "rop: Result.MustOk: result is Err", func() {
		MakeErr[int, string]("e").MustOk()
	})
}

func TestMustErr_WrongStatePanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "rop: Result.MustErr: result is Ok", func() {
		MakeOk[int, string](1).MustErr()
	})
}

func TestCheck_ClosedScopePanics(t *testing.T) {
	t.Parallel()

	var leaked *Scope[Result[int, string]]
	Do(func(s *Scope[Result[int, string]]) Result[int, string] {
		leaked = s
		return MakeOk[int, string](1)
	})

	assert.PanicsWithError(t, "rop: rop.Check: scope used outside its Do", func() {
		Try(leaked, MakeOk[int, string](2))
	})
}
