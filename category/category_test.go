package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topicfilter/clause"
	"github.com/hupe1980/topicfilter/core"
	"github.com/hupe1980/topicfilter/memstore"
)

// bugs(1) has the subcategory crashes(2); feature(3) and secret(4) are roots.
func testStore() *memstore.Store {
	return memstore.New(memstore.Fixture{
		Categories: []memstore.Category{
			{ID: 1, Slug: "bugs"},
			{ID: 2, Slug: "crashes", ParentID: 1},
			{ID: 3, Slug: "feature"},
			{ID: 4, Slug: "secret", ReadRestricted: true},
		},
	})
}

func resolve(t *testing.T, g core.Guardian, exprs []Expression) *clause.Scope {
	t.Helper()
	s := clause.New()
	r := &Resolver{Store: testStore(), Guardian: g}
	require.NoError(t, r.Apply(context.Background(), s, exprs))
	return s
}

func TestIncludeExpandsSubcategories(t *testing.T) {
	s := resolve(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "bugs"}})

	sql, args := s.SQL()
	assert.Equal(t, "SELECT topics.* FROM topics WHERE (topics.category_id IN (?, ?))", sql)
	assert.Equal(t, []any{int64(1), int64(2)}, args)
}

func TestStrictIncludeSkipsSubcategories(t *testing.T) {
	s := resolve(t, memstore.Viewer{ID: 1}, []Expression{{NoSubcategories: true, Raw: "bugs"}})

	_, args := s.SQL()
	assert.Equal(t, []any{int64(1)}, args)
}

func TestIncludeIsOrderIndependent(t *testing.T) {
	a := resolve(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "bugs,feature"}})
	b := resolve(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "feature,bugs"}})

	sqlA, argsA := a.SQL()
	sqlB, argsB := b.SQL()
	assert.Equal(t, sqlA, sqlB)
	assert.Equal(t, argsA, argsB)
}

func TestIncludeResolvingToNothingIsUnsatisfiable(t *testing.T) {
	s := resolve(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "no-such-category"}})
	assert.True(t, s.IsNone())
}

func TestInvisibleCategoryIsDropped(t *testing.T) {
	viewer := memstore.Viewer{ID: 1, HiddenCategories: []core.CategoryID{4}}

	s := resolve(t, viewer, []Expression{{Raw: "secret"}})
	assert.True(t, s.IsNone())

	s = resolve(t, viewer, []Expression{{Raw: "secret,feature"}})
	_, args := s.SQL()
	assert.Equal(t, []any{int64(3)}, args)
}

func TestExcludeUsesNotExists(t *testing.T) {
	s := resolve(t, memstore.Viewer{ID: 1}, []Expression{{Exclude: true, Raw: "bugs"}})

	sql, args := s.SQL()
	assert.Contains(t, sql, "NOT EXISTS (SELECT 1 FROM unnest(array[1,2]) AS excluded_categories(category_id)")
	assert.Contains(t, sql, "excluded_categories.category_id = topics.category_id")
	assert.Empty(t, args)
}

func TestStrictExcludeOnlyExactCategory(t *testing.T) {
	s := resolve(t, memstore.Viewer{ID: 1}, []Expression{
		{Exclude: true, NoSubcategories: true, Raw: "bugs"},
	})

	sql, _ := s.SQL()
	assert.Contains(t, sql, "unnest(array[1])")
}

func TestEmptyIncludeShortCircuitsExclude(t *testing.T) {
	s := resolve(t, memstore.Viewer{ID: 1}, []Expression{
		{Raw: "no-such-category"},
		{Exclude: true, Raw: "feature"},
	})

	require.True(t, s.IsNone())
	sql, _ := s.SQL()
	assert.NotContains(t, sql, "NOT EXISTS")
}

func TestMalformedExpressionIsIgnored(t *testing.T) {
	s := resolve(t, memstore.Viewer{ID: 1}, []Expression{{Raw: "bugs,,feature"}})

	sql, args := s.SQL()
	assert.Equal(t, "SELECT topics.* FROM topics", sql)
	assert.Empty(t, args)
}
