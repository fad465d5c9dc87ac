// Package tag resolves "tag:" and "tag_group:" filter expressions into tag
// id set constraints on the scope.
package tag

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/topicfilter/clause"
	"github.com/hupe1980/topicfilter/core"
	"github.com/hupe1980/topicfilter/token"
)

// Expression is one "tag:" or "tag_group:" token value with its prefix.
type Expression struct {
	Prefix token.Prefix
	Raw    string
}

var nameRE = regexp.MustCompile(`^[\p{L}\p{N}\-_]+$`)

// Resolver turns tag name expressions into id constraints via the tag
// store, following alias tags.
type Resolver struct {
	Store    core.TagStore
	Guardian core.Guardian
}

// Apply folds "tag:" expressions into the scope. Expressions are bucketed
// by (exclude, match-all); "+" joins names that must all be present, ","
// joins alternatives, and a single name counts as match-all. A prefix other
// than none or "-" stops bucketing from that value on.
func (r *Resolver) Apply(ctx context.Context, s *clause.Scope, exprs []Expression) error {
	var excludeAll, excludeAny, includeAny, includeAll []string

	for _, e := range exprs {
		if e.Prefix != token.None && e.Prefix != token.Exclude {
			break
		}
		names, matchAll, ok := splitExpression(e.Raw)
		if !ok {
			continue
		}
		switch {
		case e.Prefix == token.Exclude && matchAll:
			excludeAll = append(excludeAll, names...)
		case e.Prefix == token.Exclude:
			excludeAny = append(excludeAny, names...)
		case matchAll:
			includeAll = append(includeAll, names...)
		default:
			includeAny = append(includeAny, names...)
		}
	}

	if len(excludeAll) > 0 {
		ids, _, err := r.tagIDs(ctx, excludeAll)
		if err != nil {
			return err
		}
		excludeTopicsWithAllTags(s, ids)
	}

	if len(excludeAny) > 0 {
		ids, _, err := r.tagIDs(ctx, excludeAny)
		if err != nil {
			return err
		}
		excludeTopicsWithAnyTags(s, ids)
	}

	if len(includeAny) > 0 {
		ids, _, err := r.tagIDs(ctx, includeAny)
		if err != nil {
			return err
		}
		includeTopicsWithAnyTags(s, ids)
	}

	if len(includeAll) > 0 {
		ids, direct, err := r.tagIDs(ctx, includeAll)
		if err != nil {
			return err
		}
		// All-or-nothing: a name with zero matches invalidates the whole
		// conjunction rather than silently matching fewer tags.
		if direct < len(includeAll) {
			s.SetNone()
			return nil
		}
		includeTopicsWithAllTags(s, ids)
	}

	return nil
}

// ApplyGroups folds "tag_group:" expressions into the scope. Each value is
// one group name resolved to its member tag ids; only any/exclude-any
// semantics exist for groups.
func (r *Resolver) ApplyGroups(ctx context.Context, s *clause.Scope, exprs []Expression) error {
	for _, e := range exprs {
		members, err := r.Store.TagGroupMemberIDs(ctx, r.Guardian, e.Raw)
		if err != nil {
			return fmt.Errorf("tag: resolve group %q: %w", e.Raw, err)
		}

		if e.Prefix == token.Exclude {
			if len(members) == 0 {
				continue
			}
			ttAlias := s.NextTagAlias()
			tagsAlias := ttAlias + "_tags"
			s.Join(clause.Join{
				Kind: clause.Left, Table: "topic_tags", Alias: ttAlias,
				On: ttAlias + ".topic_id = topics.id",
			})
			s.Join(clause.Join{
				Kind: clause.Left, Table: "tags", Alias: tagsAlias,
				On: tagsAlias + ".id = " + ttAlias + ".tag_id",
			})
			s.Where(fmt.Sprintf("%s.id IS NULL OR %s.id NOT IN (%s)",
				tagsAlias, tagsAlias, joinIDs(members)))
			s.SetDistinct()
			continue
		}

		if len(members) == 0 {
			// An unknown group can match nothing.
			s.SetNone()
			return nil
		}
		alias := s.NextTagAlias()
		s.Join(clause.Join{
			Kind: clause.Inner, Table: "topic_tags", Alias: alias,
			On: alias + ".topic_id = topics.id",
		})
		s.Where(fmt.Sprintf("%s.tag_id IN (%s)", alias, joinIDs(members)))
		s.SetDistinct()
	}

	return nil
}

// tagIDs resolves names to visible tag ids, alias targets included and
// deduplicated. direct is the number of names that matched a tag at all,
// used for include-all validation.
func (r *Resolver) tagIDs(ctx context.Context, names []string) (ids []core.TagID, direct int, err error) {
	tags, err := r.Store.TagsByName(ctx, r.Guardian, names)
	if err != nil {
		return nil, 0, fmt.Errorf("tag: resolve names: %w", err)
	}

	set := roaring64.New()
	for _, t := range tags {
		set.Add(uint64(t.ID))
		if t.TargetTagID != 0 {
			set.Add(uint64(t.TargetTagID))
		}
	}

	ids = make([]core.TagID, 0, set.GetCardinality())
	it := set.Iterator()
	for it.HasNext() {
		ids = append(ids, core.TagID(it.Next()))
	}
	return ids, len(tags), nil
}

func splitExpression(raw string) (names []string, matchAll bool, ok bool) {
	hasComma := strings.Contains(raw, ",")
	hasPlus := strings.Contains(raw, "+")
	if hasComma && hasPlus {
		return nil, false, false
	}

	delim := ","
	matchAll = !hasComma
	if hasPlus {
		delim = "+"
	}

	names = strings.Split(raw, delim)
	for _, name := range names {
		if !nameRE.MatchString(name) {
			return nil, false, false
		}
	}
	return names, matchAll, true
}

// excludeTopicsWithAllTags requires at least one of the given tags to be
// missing: one LEFT JOIN per tag id, OR'ed IS NULL checks.
func excludeTopicsWithAllTags(s *clause.Scope, ids []core.TagID) {
	if len(ids) == 0 {
		return
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		alias := s.NextTagAlias()
		s.Join(clause.Join{
			Kind: clause.Left, Table: "topic_tags", Alias: alias,
			On: fmt.Sprintf("%s.topic_id = topics.id AND %s.tag_id = %d", alias, alias, id),
		})
		parts = append(parts, alias+".topic_id IS NULL")
	}
	s.Where(strings.Join(parts, " OR "))
}

func excludeTopicsWithAnyTags(s *clause.Scope, ids []core.TagID) {
	if len(ids) == 0 {
		return
	}
	s.Where(fmt.Sprintf(
		"topics.id NOT IN (SELECT DISTINCT topic_id FROM topic_tags WHERE topic_tags.tag_id IN (%s))",
		joinIDs(ids)))
}

func includeTopicsWithAnyTags(s *clause.Scope, ids []core.TagID) {
	alias := s.NextTagAlias()
	s.Join(clause.Join{
		Kind: clause.Inner, Table: "topic_tags", Alias: alias,
		On: alias + ".topic_id = topics.id",
	})
	if len(ids) == 0 {
		s.SetNone()
		return
	}
	s.Where(fmt.Sprintf("%s.tag_id IN (%s)", alias, joinIDs(ids)))
	s.SetDistinct()
}

// includeTopicsWithAllTags requires every tag: one INNER JOIN per tag id.
func includeTopicsWithAllTags(s *clause.Scope, ids []core.TagID) {
	for _, id := range ids {
		alias := s.NextTagAlias()
		s.Join(clause.Join{
			Kind: clause.Inner, Table: "topic_tags", Alias: alias,
			On: fmt.Sprintf("%s.topic_id = topics.id AND %s.tag_id = %d", alias, alias, id),
		})
	}
}

func joinIDs(ids []core.TagID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}
