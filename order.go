package topicfilter

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/topicfilter/clause"
)

// applyOrder resolves "order:" values. The last value that resolves to a
// column wins outright, replacing any earlier directive together with its
// join and conditions. Keys outside the fixed vocabulary fall through to
// the registry's "order:" namespace.
func (r *Resolver) applyOrder(ctx context.Context, s *clause.Scope, values []string) *clause.Scope {
	for _, v := range values {
		key, asc := strings.CutSuffix(v, "-asc")

		switch key {
		case "activity":
			s.SetOrder(clause.Order{Column: "topics.bumped_at", Ascending: asc})
		case "category":
			join := categoriesJoin
			s.SetOrder(clause.Order{Column: "categories.name", Ascending: asc, Join: &join})
		case "created":
			s.SetOrder(clause.Order{Column: "topics.created_at", Ascending: asc})
		case "latest-post":
			s.SetOrder(clause.Order{Column: "topics.last_posted_at", Ascending: asc})
		case "likes":
			s.SetOrder(clause.Order{Column: "topics.like_count", Ascending: asc})
		case "likes-op":
			join := firstPostsJoin
			s.SetOrder(clause.Order{Column: "first_posts.like_count", Ascending: asc, Join: &join})
		case "posters":
			s.SetOrder(clause.Order{Column: "topics.participant_count", Ascending: asc})
		case "title":
			s.SetOrder(clause.Order{Column: "LOWER(topics.title)", Ascending: asc})
		case "views":
			s.SetOrder(clause.Order{Column: "topics.views", Ascending: asc})
		case "read":
			s.SetOrder(r.readOrder(asc))
		default:
			fn, ok := r.opts.registry.Order(key)
			if !ok {
				r.opts.logger.Debug("ignoring unknown order key", "key", key)
				continue
			}
			if next := fn(ctx, s, asc, r.guardian); next != nil {
				s = next
			}
		}
	}
	return s
}

// readOrder orders by the viewer's last visit. An anonymous viewer has no
// visit records; an always-empty join keeps the directive harmless.
func (r *Resolver) readOrder(asc bool) clause.Order {
	if !r.guardian.Authenticated() {
		return clause.Order{
			Column:    "tu1.last_visited_at",
			Ascending: asc,
			Join:      &clause.Join{Kind: clause.Left, Table: "topic_users", Alias: "tu1", On: "1 = 0"},
		}
	}
	return clause.Order{
		Column:    "tu1.last_visited_at",
		Ascending: asc,
		Join: &clause.Join{
			Kind:  clause.Inner,
			Table: "topic_users",
			Alias: "tu1",
			On:    fmt.Sprintf("tu1.topic_id = topics.id AND tu1.user_id = %d", r.guardian.UserID()),
		},
		Conds: []clause.Cond{{Expr: "tu1.last_visited_at IS NOT NULL"}},
	}
}
