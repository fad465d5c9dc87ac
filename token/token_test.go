package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeKeywordTokens(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		groups []Group
	}{
		{
			"single token",
			"status:open",
			[]Group{{Key: "status", Values: []Value{{Raw: "open"}}}},
		},
		{
			"exclude prefix",
			"-tag:wip",
			[]Group{{Key: "tag", Values: []Value{{Prefix: Exclude, Raw: "wip"}}}},
		},
		{
			"strict prefix",
			"=category:bugs",
			[]Group{{Key: "category", Values: []Value{{Prefix: Strict, Raw: "bugs"}}}},
		},
		{
			"exclude strict prefix",
			"-=category:bugs",
			[]Group{{Key: "category", Values: []Value{{Prefix: ExcludeStrict, Raw: "bugs"}}}},
		},
		{
			"reversed exclude strict prefix",
			"=-category:bugs",
			[]Group{{Key: "category", Values: []Value{{Prefix: ExcludeStrict, Raw: "bugs"}}}},
		},
		{
			"aliases are canonicalized",
			"categories:bugs tags:wip",
			[]Group{
				{Key: "category", Values: []Value{{Raw: "bugs"}}},
				{Key: "tag", Values: []Value{{Raw: "wip"}}},
			},
		},
		{
			"alias and canonical key share a group",
			"tag:a tags:b",
			[]Group{{Key: "tag", Values: []Value{{Raw: "a"}, {Raw: "b"}}}},
		},
		{
			"per-key order is appearance order",
			"likes-min:5 status:open likes-min:10",
			[]Group{
				{Key: "likes-min", Values: []Value{{Raw: "5"}, {Raw: "10"}}},
				{Key: "status", Values: []Value{{Raw: "open"}}},
			},
		},
		{
			"hyphenated keys and values",
			"latest-post-before:2024-01-15",
			[]Group{{Key: "latest-post-before", Values: []Value{{Raw: "2024-01-15"}}}},
		},
		{
			"no tokens",
			"just some words",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.groups, Tokenize(tt.query).Groups)
		})
	}
}

func TestTokenizeResidualWords(t *testing.T) {
	tests := []struct {
		name  string
		query string
		words []string
	}{
		{"only words", "quick fix", []string{"quick", "fix"}},
		{"words around tokens", "quick status:open fix", []string{"quick", "fix"}},
		{"words containing a colon are dropped", "foo:bar:baz quick", []string{"quick"}},
		{"whitespace only", "   \t  ", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.words, Tokenize(tt.query).Words)
		})
	}
}

func TestPrefixSemantics(t *testing.T) {
	require.True(t, Exclude.Excludes())
	require.True(t, ExcludeStrict.Excludes())
	require.False(t, Strict.Excludes())

	require.True(t, Strict.IsStrict())
	require.True(t, ExcludeStrict.IsStrict())
	require.False(t, Exclude.IsStrict())

	assert.Equal(t, "-=", ExcludeStrict.String())
	assert.Equal(t, "", None.String())
}
