package topicfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/topicfilter/core"
	"github.com/hupe1980/topicfilter/memstore"
)

func catalogNames(entries []CatalogEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func TestCatalogAnonymousHidesPersonalEntries(t *testing.T) {
	names := catalogNames(Catalog(core.Anonymous, true))

	assert.Contains(t, names, "category:")
	assert.Contains(t, names, "status:open")
	assert.Contains(t, names, "order:likes-asc")
	assert.Contains(t, names, "tag:")
	assert.NotContains(t, names, "in:")
	assert.NotContains(t, names, "in:bookmarked")
}

func TestCatalogAuthenticatedIncludesPersonalEntries(t *testing.T) {
	names := catalogNames(Catalog(memstore.Viewer{ID: 1}, true))

	assert.Contains(t, names, "in:")
	assert.Contains(t, names, "in:pinned")
	assert.Contains(t, names, "in:watching_first_post")
}

func TestCatalogTaggingDisabledHidesTagEntries(t *testing.T) {
	names := catalogNames(Catalog(memstore.Viewer{ID: 1}, false))

	assert.NotContains(t, names, "tag:")
	assert.NotContains(t, names, "tag_group:")
	assert.Contains(t, names, "category:")
}
