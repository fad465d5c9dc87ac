package tag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topicfilter/clause"
	"github.com/hupe1980/topicfilter/core"
	"github.com/hupe1980/topicfilter/memstore"
	"github.com/hupe1980/topicfilter/token"
)

// foo(1), bar(2), old-name(3) aliasing foo, secret(4, hidden).
// Group "frontend" holds foo and bar.
func testStore() *memstore.Store {
	return memstore.New(memstore.Fixture{
		Tags: []memstore.Tag{
			{ID: 1, Name: "foo"},
			{ID: 2, Name: "bar"},
			{ID: 3, Name: "old-name", TargetTagID: 1},
			{ID: 4, Name: "secret", Hidden: true},
		},
		TagGroups: []memstore.TagGroup{
			{Name: "frontend", TagIDs: []core.TagID{1, 2}},
		},
	})
}

func apply(t *testing.T, g core.Guardian, exprs []Expression) *clause.Scope {
	t.Helper()
	s := clause.New()
	r := &Resolver{Store: testStore(), Guardian: g}
	require.NoError(t, r.Apply(context.Background(), s, exprs))
	return s
}

func applyGroups(t *testing.T, g core.Guardian, exprs []Expression) *clause.Scope {
	t.Helper()
	s := clause.New()
	r := &Resolver{Store: testStore(), Guardian: g}
	require.NoError(t, r.ApplyGroups(context.Background(), s, exprs))
	return s
}

func TestIncludeAllJoinsPerTag(t *testing.T) {
	s := apply(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "foo+bar"}})

	sql, _ := s.SQL()
	assert.Contains(t, sql, "INNER JOIN topic_tags tt1 ON tt1.topic_id = topics.id AND tt1.tag_id = 1")
	assert.Contains(t, sql, "INNER JOIN topic_tags tt2 ON tt2.topic_id = topics.id AND tt2.tag_id = 2")
	assert.False(t, s.IsNone())
}

func TestSingleTagIsMatchAll(t *testing.T) {
	s := apply(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "foo"}})

	sql, _ := s.SQL()
	assert.Contains(t, sql, "INNER JOIN topic_tags tt1 ON tt1.topic_id = topics.id AND tt1.tag_id = 1")
}

func TestIncludeAnyUsesOneJoin(t *testing.T) {
	s := apply(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "foo,bar"}})

	sql, _ := s.SQL()
	assert.Contains(t, sql, "INNER JOIN topic_tags tt1 ON tt1.topic_id = topics.id")
	assert.Contains(t, sql, "(tt1.tag_id IN (1,2))")
	assert.Contains(t, sql, "SELECT DISTINCT")
}

func TestUnknownTagInAllIsUnsatisfiable(t *testing.T) {
	s := apply(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "nope"}})
	assert.True(t, s.IsNone())
}

func TestUnknownTagInAnyIsTolerated(t *testing.T) {
	s := apply(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "nope,bar"}})

	require.False(t, s.IsNone())
	sql, _ := s.SQL()
	assert.Contains(t, sql, "(tt1.tag_id IN (2))")
}

func TestAliasFollowing(t *testing.T) {
	// old-name resolves to itself and its target foo.
	s := apply(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "old-name,nope"}})

	sql, _ := s.SQL()
	assert.Contains(t, sql, "(tt1.tag_id IN (1,3))")
}

func TestExcludeAny(t *testing.T) {
	s := apply(t, memstore.Viewer{ID: 1}, []Expression{{Prefix: token.Exclude, Raw: "foo,bar"}})

	sql, _ := s.SQL()
	assert.Contains(t, sql,
		"topics.id NOT IN (SELECT DISTINCT topic_id FROM topic_tags WHERE topic_tags.tag_id IN (1,2))")
}

func TestExcludeAllUsesLeftJoins(t *testing.T) {
	s := apply(t, memstore.Viewer{ID: 1}, []Expression{{Prefix: token.Exclude, Raw: "foo+bar"}})

	sql, _ := s.SQL()
	assert.Contains(t, sql, "LEFT JOIN topic_tags tt1 ON tt1.topic_id = topics.id AND tt1.tag_id = 1")
	assert.Contains(t, sql, "LEFT JOIN topic_tags tt2 ON tt2.topic_id = topics.id AND tt2.tag_id = 2")
	assert.Contains(t, sql, "(tt1.topic_id IS NULL OR tt2.topic_id IS NULL)")
}

func TestMixedDelimitersInvalidateExpression(t *testing.T) {
	s := apply(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "foo+bar,baz"}})

	sql, _ := s.SQL()
	assert.Equal(t, "SELECT topics.* FROM topics", sql)
}

func TestMalformedPrefixStopsBucketing(t *testing.T) {
	s := apply(t, memstore.Viewer{ID: 1}, []Expression{
		{Prefix: token.Exclude, Raw: "foo"},
		{Prefix: token.Strict, Raw: "bar"},
		{Raw: "bar"},
	})

	// The exclude before the malformed prefix still applies; everything
	// after it is dropped.
	sql, _ := s.SQL()
	assert.Contains(t, sql, "LEFT JOIN topic_tags tt1")
	assert.NotContains(t, sql, "tt2")
}

func TestHiddenTagInvisibleToAnonymous(t *testing.T) {
	s := apply(t, memstore.Viewer{}, []Expression{{Raw: "secret"}})
	assert.True(t, s.IsNone())

	s = apply(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "secret"}})
	assert.False(t, s.IsNone())
}

func TestGroupInclude(t *testing.T) {
	s := applyGroups(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "frontend"}})

	sql, _ := s.SQL()
	assert.Contains(t, sql, "INNER JOIN topic_tags tt1 ON tt1.topic_id = topics.id")
	assert.Contains(t, sql, "(tt1.tag_id IN (1,2))")
	assert.Contains(t, sql, "SELECT DISTINCT")
}

func TestGroupExclude(t *testing.T) {
	s := applyGroups(t, memstore.Viewer{ID: 1}, []Expression{{Prefix: token.Exclude, Raw: "frontend"}})

	sql, _ := s.SQL()
	assert.Contains(t, sql, "LEFT JOIN topic_tags tt1 ON tt1.topic_id = topics.id")
	assert.Contains(t, sql, "LEFT JOIN tags tt1_tags ON tt1_tags.id = tt1.tag_id")
	assert.Contains(t, sql, "(tt1_tags.id IS NULL OR tt1_tags.id NOT IN (1,2))")
}

func TestUnknownGroupIncludeIsUnsatisfiable(t *testing.T) {
	s := applyGroups(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "nope"}})
	assert.True(t, s.IsNone())
}
