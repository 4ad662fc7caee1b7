package handoff

import (
	"context"
	"sync"
	"testing"

	"github.com/ib-77/rustlike/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type res = rop.Result[int, string]

func TestSend_MovesOwnership(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ch := make(chan res, 1)
	r := rop.MakeOk[int, string](5)

	require.True(t, Send(ctx, ch, &r))
	assert.True(t, r.IsNone())
	assert.Equal(t, rop.MakeOk[int, string](5), <-ch)
}

func TestSend_CancelledKeepsSource(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan res)
	r := rop.MakeErr[int]("e")

	assert.False(t, Send(ctx, ch, &r))
	assert.Equal(t, rop.MakeErr[int]("e"), r)
}

func TestToChanMany_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	values := []res{
		rop.MakeOk[int, string](1),
		rop.MakeErr[int]("two"),
		rop.None[int, string](),
	}

	var mu sync.Mutex
	sent := make([]int, 0)
	out := FromChanMany(ctx, ToChanMany(ctx, Handlers[int, string]{
		OnSent: func(ctx context.Context, index int) {
			mu.Lock()
			defer mu.Unlock()
			sent = append(sent, index)
		},
	}, values))

	assert.Equal(t, []res{
		rop.MakeOk[int, string](1),
		rop.MakeErr[int]("two"),
		rop.None[int, string](),
	}, out)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2}, sent)
	for _, v := range values {
		assert.True(t, v.IsNone(), "delivered value must be None, got %v", v)
	}
}

func TestToChanMany_StartFail(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	values := []res{rop.MakeOk[int, string](1)}
	var got []res
	ch := ToChanMany(ctx, Handlers[int, string]{
		OnStartFail: func(ctx context.Context, input []res) { got = input },
	}, values)

	_, open := <-ch
	assert.False(t, open)
	assert.Len(t, got, 1)
	assert.True(t, values[0].IsOk())
}

func TestToChanMany_BreakKeepsRest(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	values := []res{
		rop.MakeOk[int, string](1),
		rop.MakeOk[int, string](2),
		rop.MakeOk[int, string](3),
	}

	restCh := make(chan []res, 1)
	ch := ToChanMany(ctx, Handlers[int, string]{
		OnBreak: func(ctx context.Context, rest []res) { restCh <- rest },
	}, values)

	first := FirstOrDefault(ctx, ch, res{})
	assert.Equal(t, rop.MakeOk[int, string](1), first)
	cancel()

	rest := <-restCh
	_, open := <-ch
	assert.False(t, open)

	require.Len(t, rest, 2)
	assert.Equal(t, 2, rest[0].MustOk())
	assert.Equal(t, 3, rest[1].MustOk())
	assert.True(t, values[0].IsNone())
}

func TestFirstOrDefault_Closed(t *testing.T) {
	t.Parallel()

	ch := make(chan res)
	close(ch)

	def := rop.MakeErr[int]("default")
	assert.Equal(t, def, FirstOrDefault(context.Background(), ch, def))
}
