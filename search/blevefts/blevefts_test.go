package blevefts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })

	require.NoError(t, e.IndexPost(10, 100, "the quick brown fox"))
	require.NoError(t, e.IndexPost(10, 101, "jumps over the lazy dog"))
	require.NoError(t, e.IndexPost(20, 200, "a quick fix for the crash"))
	return e
}

func TestCompileMatchesTopics(t *testing.T) {
	e := newEngine(t)

	cond, err := e.Compile(context.Background(), "quick")
	require.NoError(t, err)

	assert.Equal(t, "topics.id IN (?, ?)", cond.Expr)
	assert.ElementsMatch(t, []any{int64(10), int64(20)}, cond.Args)
}

func TestCompileDeduplicatesTopics(t *testing.T) {
	e := newEngine(t)

	// Both posts of topic 10 match "the".
	cond, err := e.Compile(context.Background(), "the")
	require.NoError(t, err)
	assert.ElementsMatch(t, []any{int64(10), int64(20)}, cond.Args)
}

func TestCompileNoHits(t *testing.T) {
	e := newEngine(t)

	cond, err := e.Compile(context.Background(), "zebra")
	require.NoError(t, err)
	assert.Equal(t, "1 = 0", cond.Expr)
	assert.Empty(t, cond.Args)
}

func TestDeletePost(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.DeletePost(200))

	cond, err := e.Compile(context.Background(), "quick")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(10)}, cond.Args)
}
