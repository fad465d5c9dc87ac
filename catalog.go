package topicfilter

import "github.com/hupe1980/topicfilter/core"

// CatalogEntry describes one supported filter or order key for UI
// autocomplete: its value type, delimiters and prefixes. The catalog is
// static data; it is never consulted during resolution.
type CatalogEntry struct {
	Name        string             `json:"name" yaml:"name"`
	Alias       string             `json:"alias,omitempty" yaml:"alias,omitempty"`
	Description string             `json:"description" yaml:"description"`
	Priority    int                `json:"priority,omitempty" yaml:"priority,omitempty"`
	Type        string             `json:"type,omitempty" yaml:"type,omitempty"`
	Delimiters  []CatalogDelimiter `json:"delimiters,omitempty" yaml:"delimiters,omitempty"`
	Prefixes    []CatalogPrefix    `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
}

// CatalogDelimiter documents one value delimiter of a filter key.
type CatalogDelimiter struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// CatalogPrefix documents one key prefix of a filter key.
type CatalogPrefix struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Catalog returns the filter vocabulary available to the viewer. "in:"
// entries require authentication; tag entries require tagging to be
// enabled.
func Catalog(g core.Guardian, taggingEnabled bool) []CatalogEntry {
	entries := []CatalogEntry{
		{
			Name:     "category:",
			Alias:    "categories:",
			Priority: 1, Type: "category",
			Description: "Topics in the given categories",
			Delimiters: []CatalogDelimiter{
				{Name: ",", Description: "In any of the categories"},
			},
			Prefixes: []CatalogPrefix{
				{Name: "-", Description: "Exclude the categories"},
				{Name: "=", Description: "Without subcategories"},
				{Name: "-=", Description: "Exclude, without subcategories"},
			},
		},
		{Name: "activity-before:", Type: "date", Description: "Last active before the date"},
		{Name: "activity-after:", Type: "date", Description: "Last active after the date"},
		{Name: "created-before:", Type: "date", Description: "Created before the date"},
		{Name: "created-after:", Priority: 1, Type: "date", Description: "Created after the date"},
		{
			Name: "created-by:", Type: "username",
			Description: "Created by the given users",
			Delimiters: []CatalogDelimiter{
				{Name: ",", Description: "By any of the users"},
			},
		},
		{Name: "latest-post-before:", Type: "date", Description: "Last posted to before the date"},
		{Name: "latest-post-after:", Type: "date", Description: "Last posted to after the date"},
		{Name: "likes-min:", Type: "number", Description: "With at least this many likes"},
		{Name: "likes-max:", Type: "number", Description: "With at most this many likes"},
		{Name: "likes-op-min:", Type: "number", Description: "First post has at least this many likes"},
		{Name: "likes-op-max:", Type: "number", Description: "First post has at most this many likes"},
		{Name: "posts-min:", Type: "number", Description: "With at least this many posts"},
		{Name: "posts-max:", Type: "number", Description: "With at most this many posts"},
		{Name: "posters-min:", Type: "number", Description: "With at least this many posters"},
		{Name: "posters-max:", Type: "number", Description: "With at most this many posters"},
		{Name: "views-min:", Type: "number", Description: "With at least this many views"},
		{Name: "views-max:", Type: "number", Description: "With at most this many views"},
		{Name: "status:", Priority: 1, Description: "Topics in the given state"},
		{Name: "status:open", Description: "Neither closed nor archived"},
		{Name: "status:closed", Description: "Closed topics"},
		{Name: "status:archived", Description: "Archived topics"},
		{Name: "status:listed", Description: "Listed topics"},
		{Name: "status:unlisted", Description: "Unlisted topics"},
		{Name: "status:deleted", Description: "Deleted topics, if you may see them"},
		{Name: "status:public", Description: "Topics in unrestricted categories"},
		{Name: "order:", Priority: 1, Description: "Order of the results"},
		{Name: "order:activity", Description: "Most recently active first"},
		{Name: "order:activity-asc", Description: "Least recently active first"},
		{Name: "order:category", Description: "By category name, descending"},
		{Name: "order:category-asc", Description: "By category name, ascending"},
		{Name: "order:created", Description: "Newest first"},
		{Name: "order:created-asc", Description: "Oldest first"},
		{Name: "order:latest-post", Description: "Most recently posted to first"},
		{Name: "order:latest-post-asc", Description: "Least recently posted to first"},
		{Name: "order:likes", Description: "Most liked first"},
		{Name: "order:likes-asc", Description: "Least liked first"},
		{Name: "order:likes-op", Description: "Most liked first post first"},
		{Name: "order:likes-op-asc", Description: "Least liked first post first"},
		{Name: "order:posters", Description: "Most posters first"},
		{Name: "order:posters-asc", Description: "Fewest posters first"},
		{Name: "order:title", Description: "By title, descending"},
		{Name: "order:title-asc", Description: "By title, ascending"},
		{Name: "order:views", Description: "Most viewed first"},
		{Name: "order:views-asc", Description: "Least viewed first"},
		{Name: "order:read", Description: "Most recently read first"},
		{Name: "order:read-asc", Description: "Least recently read first"},
	}

	if g.Authenticated() {
		entries = append(entries,
			CatalogEntry{Name: "in:", Priority: 1, Description: "Topics with the given personal state"},
			CatalogEntry{Name: "in:pinned", Description: "Currently pinned topics"},
			CatalogEntry{Name: "in:bookmarked", Description: "Topics you bookmarked"},
			CatalogEntry{Name: "in:watching", Description: "Topics you are watching"},
			CatalogEntry{Name: "in:tracking", Description: "Topics you are tracking"},
			CatalogEntry{Name: "in:muted", Description: "Topics you muted"},
			CatalogEntry{Name: "in:normal", Description: "Topics at normal notification level"},
			CatalogEntry{Name: "in:watching_first_post", Description: "Topics where you watch first posts"},
		)
	}

	if taggingEnabled {
		entries = append(entries,
			CatalogEntry{
				Name:     "tag:",
				Alias:    "tags:",
				Priority: 1, Type: "tag",
				Description: "Topics with the given tags",
				Delimiters: []CatalogDelimiter{
					{Name: ",", Description: "With any of the tags"},
					{Name: "+", Description: "With all of the tags"},
				},
				Prefixes: []CatalogPrefix{
					{Name: "-", Description: "Exclude the tags"},
				},
			},
			CatalogEntry{
				Name: "tag_group:", Type: "tag_group",
				Description: "Topics tagged from the given tag group",
				Prefixes: []CatalogPrefix{
					{Name: "-", Description: "Exclude the tag group"},
				},
			},
		)
	}

	return entries
}
