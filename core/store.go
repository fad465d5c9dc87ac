package core

import "context"

// CategoryStore resolves category slugs and hierarchy.
type CategoryStore interface {
	// IDsFromSlugs resolves category slugs to ids. Unknown slugs are dropped.
	IDsFromSlugs(ctx context.Context, slugs []string) ([]CategoryID, error)

	// SubcategoryIDs returns the given id plus the ids of all of its
	// descendant categories.
	SubcategoryIDs(ctx context.Context, id CategoryID) ([]CategoryID, error)
}

// TagStore resolves tag names and tag groups, restricted to what the viewer
// may see.
type TagStore interface {
	// TagsByName returns the tags matching the given names that the viewer
	// may see, alias tags included.
	TagsByName(ctx context.Context, g Guardian, names []string) ([]Tag, error)

	// TagGroupMemberIDs returns the member tag ids of the visible tag group
	// with the given name. An unknown or invisible group yields no ids.
	TagGroupMemberIDs(ctx context.Context, g Guardian, name string) ([]TagID, error)
}
