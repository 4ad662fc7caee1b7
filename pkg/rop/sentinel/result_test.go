package sentinel

import (
	"testing"

	"github.com/ib-77/rustlike/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorCode int

const (
	codeOk errorCode = iota
	codeFail
	codeRetry
)

type okCode struct{}

func (okCode) Sentinel() errorCode { return codeOk }

type ecResult = Result[string, errorCode, okCode]

var _ rop.Fallible[string, errorCode] = (*ecResult)(nil)

func returnOk() ecResult {
	return Ok[string, errorCode, okCode]("payload")
}

func returnErr() ecResult {
	return Err[string, errorCode, okCode](codeFail)
}

func propagateOk() ecResult {
	return rop.Do(func(s *rop.Scope[ecResult]) ecResult {
		payload := Try(s, returnOk())
		return Ok[string, errorCode, okCode](payload + " me more")
	})
}

func propagateErr(t *testing.T) ecResult {
	return rop.Do(func(s *rop.Scope[ecResult]) ecResult {
		_ = Try(s, returnErr())
		t.Fatal("unreachable")
		return ecResult{}
	})
}

func lengthOf(r ecResult) Result[int, errorCode, okCode] {
	return rop.Do(func(s *rop.Scope[Result[int, errorCode, okCode]]) Result[int, errorCode, okCode] {
		payload := TryInto(s, r)
		return Ok[int, errorCode, okCode](len(payload))
	})
}

func TestTryInto(t *testing.T) {
	t.Parallel()

	ok := lengthOf(returnOk())
	assert.Equal(t, 7, ok.MustOk())

	failed := lengthOf(Err[string, errorCode, okCode](codeRetry))
	assert.True(t, failed.IsErr())
	assert.Equal(t, codeRetry, failed.Tag())
}

func matchDiff(r ecResult) int {
	diff := 0
	r.Match(
		func(string) { diff++ },
		func(errorCode) { diff-- },
	)
	return diff
}

func TestPropagation(t *testing.T) {
	t.Parallel()

	resOk := propagateOk()
	require.True(t, resOk.IsOk())
	assert.Equal(t, "payload me more", *resOk.GetOk())

	resErr := propagateErr(t)
	assert.True(t, resErr.IsErr())
	assert.Equal(t, codeFail, resErr.Tag())
}

func TestOk(t *testing.T) {
	t.Parallel()

	ok := Ok[string, errorCode, okCode]("has value")
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())
	require.NotNil(t, ok.GetOk())
	assert.Equal(t, "has value", *ok.GetOk())
	assert.Nil(t, ok.GetErr())
	assert.Equal(t, codeOk, ok.Tag())
	assert.Equal(t, 1, matchDiff(ok))
}

func TestErr(t *testing.T) {
	t.Parallel()

	for _, code := range []errorCode{codeFail, codeRetry} {
		err := Err[string, errorCode, okCode](code)
		assert.True(t, err.IsErr())
		assert.Equal(t, code, err.Tag())
		assert.Nil(t, err.GetOk())
		require.NotNil(t, err.GetErr())
		assert.Equal(t, code, *err.GetErr())
		assert.Equal(t, -1, matchDiff(err))
	}
}

func TestTake_FromOk(t *testing.T) {
	t.Parallel()

	ok := Ok[string, errorCode, okCode]("has value")
	moved := ok.Take()

	require.True(t, moved.IsOk())
	assert.Equal(t, "has value", *moved.GetOk())
	assert.True(t, ok.IsOk())
	assert.Equal(t, codeOk, ok.Tag())
	assert.Equal(t, "", *ok.GetOk())
}

func TestTake_FromErr(t *testing.T) {
	t.Parallel()

	err := Err[string, errorCode, okCode](codeFail)
	moved := err.Take()

	assert.True(t, moved.IsErr())
	assert.Equal(t, codeFail, moved.Tag())
	assert.True(t, err.IsOk())
	assert.Equal(t, "", *err.GetOk())
}

func TestMatchMut(t *testing.T) {
	t.Parallel()

	ok := Ok[[]int, errorCode, okCode]([]int{1})
	ok.MatchMut(func(v *[]int) { *v = append(*v, 2) }, func(*errorCode) { t.Fatal("onErr called") })
	assert.Equal(t, []int{1, 2}, ok.MustOk())

	err := Err[[]int, errorCode, okCode](codeFail)
	err.MatchMut(nil, func(c *errorCode) { *c = codeRetry })
	assert.Equal(t, codeRetry, err.Tag())
}

type negative struct{}

func (negative) Sentinel() int { return -1 }

func TestNonZeroSentinel(t *testing.T) {
	t.Parallel()

	var zero Result[string, int, negative]
	assert.True(t, zero.IsErr())
	assert.Equal(t, 0, zero.Tag())
	assert.Equal(t, -1, zero.SentinelValue())

	ok := Ok[string, int, negative]("v")
	assert.True(t, ok.IsOk())
	assert.Equal(t, -1, ok.Tag())

	err := Err[string, int, negative](0)
	assert.True(t, err.IsErr())
}

func TestZeroValue_ZeroSentinel(t *testing.T) {
	t.Parallel()

	var r ecResult
	assert.True(t, r.IsOk())
	assert.Equal(t, "", r.MustOk())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ok(x)", Ok[string, errorCode, okCode]("x").String())
	assert.Equal(t, "Err(1)", Err[string, errorCode, okCode](codeFail).String())
}
