package tsquery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	cond, err := New().Compile(context.Background(), "quick fix")
	require.NoError(t, err)

	assert.Contains(t, cond.Expr, "topics.id IN (")
	assert.Contains(t, cond.Expr, "search_data @@ to_tsquery(?, ?)")
	assert.Equal(t, []any{"english", "'quick':* & 'fix':*"}, cond.Args)
}

func TestCompileSanitizesLexemes(t *testing.T) {
	cond, err := New().Compile(context.Background(), "it's (a|b)")
	require.NoError(t, err)
	assert.Equal(t, []any{"english", "'its':* & 'ab':*"}, cond.Args)
}

func TestCompileEmptyTermMatchesNothing(t *testing.T) {
	cond, err := New().Compile(context.Background(), "&& ||")
	require.NoError(t, err)
	assert.Equal(t, "1 = 0", cond.Expr)
	assert.Empty(t, cond.Args)
}

func TestCompileCustomLanguage(t *testing.T) {
	e := &Engine{Language: "german"}
	cond, err := e.Compile(context.Background(), "fehler")
	require.NoError(t, err)
	assert.Equal(t, "german", cond.Args[0])
}
