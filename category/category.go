// Package category resolves "category:" filter expressions into
// permission-filtered category id sets and folds them into the scope.
package category

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/topicfilter/clause"
	"github.com/hupe1980/topicfilter/core"
)

// Expression is one "category:" token value with its prefix semantics
// already decoded.
type Expression struct {
	// Exclude inverts the expression ("-" prefix).
	Exclude bool
	// NoSubcategories disables subtree expansion ("=" prefix).
	NoSubcategories bool
	// Raw is the comma-joined slug list.
	Raw string
}

// A slug list is one or more slug tokens joined by a single consistent
// delimiter; only "," is accepted for categories.
var slugListRE = regexp.MustCompile(`^[\p{L}\p{N}\-:]+(?:,[\p{L}\p{N}\-:]+)*$`)

// Resolver turns slug expressions into id sets via the category store,
// honoring the guardian's visibility.
type Resolver struct {
	Store    core.CategoryStore
	Guardian core.Guardian
}

// Apply folds the category expressions into the scope. Include sets union
// across expressions; an include that resolves to no visible category makes
// the scope unsatisfiable and short-circuits exclude processing.
func (r *Resolver) Apply(ctx context.Context, s *clause.Scope, exprs []Expression) error {
	var includePlain, includeStrict, excludePlain, excludeStrict []string

	for _, e := range exprs {
		if !slugListRE.MatchString(e.Raw) {
			continue
		}
		slugs := strings.Split(e.Raw, ",")
		switch {
		case e.Exclude && e.NoSubcategories:
			excludeStrict = append(excludeStrict, slugs...)
		case e.Exclude:
			excludePlain = append(excludePlain, slugs...)
		case e.NoSubcategories:
			includeStrict = append(includeStrict, slugs...)
		default:
			includePlain = append(includePlain, slugs...)
		}
	}

	include := roaring64.New()
	if err := r.collect(ctx, include, includeStrict, true); err != nil {
		return err
	}
	if err := r.collect(ctx, include, includePlain, false); err != nil {
		return err
	}

	switch {
	case !include.IsEmpty():
		ids := include.ToArray()
		args := make([]any, len(ids))
		for i, id := range ids {
			args[i] = int64(id)
		}
		s.Where("topics.category_id IN ("+clause.Placeholders(len(ids))+")", args...)
	case len(includePlain)+len(includeStrict) > 0:
		// Include slugs were supplied but none survived resolution: dropping
		// the constraint would wrongly widen the result.
		s.SetNone()
		return nil
	}

	exclude := roaring64.New()
	if err := r.collect(ctx, exclude, excludeStrict, true); err != nil {
		return err
	}
	if err := r.collect(ctx, exclude, excludePlain, false); err != nil {
		return err
	}

	if !exclude.IsEmpty() {
		// NOT EXISTS over an unnested array scales better than a large
		// negative IN list. Topics without a category are never excluded.
		s.Where(fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM unnest(array[%s]) AS excluded_categories(category_id)"+
				" WHERE excluded_categories.category_id = topics.category_id)",
			joinIDs(exclude),
		))
	}

	return nil
}

// collect resolves slugs to visible category ids and adds them to the set,
// expanding each id to its subtree unless strict.
func (r *Resolver) collect(ctx context.Context, set *roaring64.Bitmap, slugs []string, strict bool) error {
	if len(slugs) == 0 {
		return nil
	}

	ids, err := r.Store.IDsFromSlugs(ctx, slugs)
	if err != nil {
		return fmt.Errorf("category: resolve slugs: %w", err)
	}

	for _, id := range ids {
		if !r.Guardian.CanSeeCategory(id) {
			continue
		}
		if strict {
			set.Add(uint64(id))
			continue
		}
		subtree, err := r.Store.SubcategoryIDs(ctx, id)
		if err != nil {
			return fmt.Errorf("category: expand subcategories of %d: %w", id, err)
		}
		for _, sub := range subtree {
			set.Add(uint64(sub))
		}
	}

	return nil
}

func joinIDs(set *roaring64.Bitmap) string {
	parts := make([]string, 0, set.GetCardinality())
	it := set.Iterator()
	for it.HasNext() {
		parts = append(parts, fmt.Sprintf("%d", it.Next()))
	}
	return strings.Join(parts, ",")
}
