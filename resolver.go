package topicfilter

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/topicfilter/category"
	"github.com/hupe1980/topicfilter/clause"
	"github.com/hupe1980/topicfilter/core"
	"github.com/hupe1980/topicfilter/tag"
	"github.com/hupe1980/topicfilter/token"
	"github.com/hupe1980/topicfilter/value"
)

// filterKey is the closed built-in filter vocabulary. Everything else is
// keyOther and routed to the registry.
type filterKey int

const (
	keyOther filterKey = iota
	keyActivityBefore
	keyActivityAfter
	keyCategory
	keyCreatedAfter
	keyCreatedBefore
	keyCreatedBy
	keyIn
	keyLatestPostAfter
	keyLatestPostBefore
	keyLikesMin
	keyLikesMax
	keyLikesOpMin
	keyLikesOpMax
	keyOrder
	keyPostsMin
	keyPostsMax
	keyPostersMin
	keyPostersMax
	keyStatus
	keyTag
	keyTagGroup
	keyViewsMin
	keyViewsMax
)

var filterKeys = map[string]filterKey{
	"activity-before":    keyActivityBefore,
	"activity-after":     keyActivityAfter,
	"category":           keyCategory,
	"created-after":      keyCreatedAfter,
	"created-before":     keyCreatedBefore,
	"created-by":         keyCreatedBy,
	"in":                 keyIn,
	"latest-post-after":  keyLatestPostAfter,
	"latest-post-before": keyLatestPostBefore,
	"likes-min":          keyLikesMin,
	"likes-max":          keyLikesMax,
	"likes-op-min":       keyLikesOpMin,
	"likes-op-max":       keyLikesOpMax,
	"order":              keyOrder,
	"posts-min":          keyPostsMin,
	"posts-max":          keyPostsMax,
	"posters-min":        keyPostersMin,
	"posters-max":        keyPostersMax,
	"status":             keyStatus,
	"tag":                keyTag,
	"tag_group":          keyTagGroup,
	"views-min":          keyViewsMin,
	"views-max":          keyViewsMax,
}

func parseFilterKey(s string) filterKey {
	if k, ok := filterKeys[s]; ok {
		return k
	}
	return keyOther
}

// Resolver resolves query strings for one viewer. It is safe for concurrent
// use: every resolution builds its own scope.
type Resolver struct {
	guardian   core.Guardian
	categories *category.Resolver
	tags       *tag.Resolver
	opts       options
}

// New creates a Resolver for the given viewer and stores.
func New(g core.Guardian, cs core.CategoryStore, ts core.TagStore, opts ...Option) (*Resolver, error) {
	if g == nil {
		return nil, ErrNilGuardian
	}
	if cs == nil {
		return nil, ErrNilCategoryStore
	}
	if ts == nil {
		return nil, ErrNilTagStore
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Resolver{
		guardian:   g,
		categories: &category.Resolver{Store: cs, Guardian: g},
		tags:       &tag.Resolver{Store: ts, Guardian: g},
		opts:       o,
	}, nil
}

// Resolve turns one query string into a Result. An empty or whitespace-only
// query resolves to the identity scope. Malformed input degrades to ignored
// filters or an unsatisfiable scope; only collaborator failures error.
func (r *Resolver) Resolve(ctx context.Context, query string) (*Result, error) {
	start := time.Now()
	res, err := r.resolve(ctx, query)
	r.opts.metrics.RecordResolve(time.Since(start), err)
	return res, err
}

// ResolveMany resolves several queries concurrently, each against its own
// scope. The first collaborator failure cancels the batch.
func (r *Resolver) ResolveMany(ctx context.Context, queries []string) ([]*Result, error) {
	results := make([]*Result, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			res, err := r.Resolve(ctx, q)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Resolver) resolve(ctx context.Context, query string) (*Result, error) {
	s := clause.New()
	levels := make(map[core.NotificationLevel]struct{})

	if strings.TrimSpace(query) == "" {
		return newResult(s, levels), nil
	}

	tq := token.Tokenize(query)

	for _, grp := range tq.Groups {
		var err error
		s, err = r.dispatch(ctx, s, grp, levels)
		if err != nil {
			return nil, err
		}
	}

	if err := r.applyFreeText(ctx, s, tq.Words); err != nil {
		return nil, err
	}

	return newResult(s, levels), nil
}

func (r *Resolver) dispatch(ctx context.Context, s *clause.Scope, grp token.Group, levels map[core.NotificationLevel]struct{}) (*clause.Scope, error) {
	raws := make([]string, len(grp.Values))
	for i, v := range grp.Values {
		raws[i] = v.Raw
	}

	switch parseFilterKey(grp.Key) {
	case keyActivityBefore:
		r.filterDate(s, "topics.bumped_at", raws, true)
	case keyActivityAfter:
		r.filterDate(s, "topics.bumped_at", raws, false)
	case keyCreatedBefore:
		r.filterDate(s, "topics.created_at", raws, true)
	case keyCreatedAfter:
		r.filterDate(s, "topics.created_at", raws, false)
	case keyLatestPostBefore:
		r.filterDate(s, "topics.last_posted_at", raws, true)
	case keyLatestPostAfter:
		r.filterDate(s, "topics.last_posted_at", raws, false)

	case keyLikesMin:
		r.filterCount(s, "topics.like_count", raws, false)
	case keyLikesMax:
		r.filterCount(s, "topics.like_count", raws, true)
	case keyLikesOpMin:
		r.filterFirstPostCount(s, raws, false)
	case keyLikesOpMax:
		r.filterFirstPostCount(s, raws, true)
	case keyPostsMin:
		r.filterCount(s, "topics.posts_count", raws, false)
	case keyPostsMax:
		r.filterCount(s, "topics.posts_count", raws, true)
	case keyPostersMin:
		r.filterCount(s, "topics.participant_count", raws, false)
	case keyPostersMax:
		r.filterCount(s, "topics.participant_count", raws, true)
	case keyViewsMin:
		r.filterCount(s, "topics.views", raws, false)
	case keyViewsMax:
		r.filterCount(s, "topics.views", raws, true)

	case keyCategory:
		exprs := make([]category.Expression, len(grp.Values))
		for i, v := range grp.Values {
			exprs[i] = category.Expression{
				Exclude:         v.Prefix.Excludes(),
				NoSubcategories: v.Prefix.IsStrict(),
				Raw:             v.Raw,
			}
		}
		if err := r.categories.Apply(ctx, s, exprs); err != nil {
			return nil, err
		}

	case keyTag:
		if !r.opts.tagging {
			break
		}
		if err := r.tags.Apply(ctx, s, tagExpressions(grp)); err != nil {
			return nil, err
		}

	case keyTagGroup:
		if err := r.tags.ApplyGroups(ctx, s, tagExpressions(grp)); err != nil {
			return nil, err
		}

	case keyCreatedBy:
		r.filterCreatedBy(s, value.Usernames(raws))

	case keyIn:
		r.filterIn(s, raws, levels)

	case keyStatus:
		for _, status := range raws {
			s = r.filterStatus(s, status)
		}

	case keyOrder:
		s = r.applyOrder(ctx, s, value.SplitFlat(raws))

	default:
		fn, ok := r.opts.registry.Filter(grp.Key)
		if !ok {
			r.opts.logger.Debug("ignoring unknown filter", "key", grp.Key)
			break
		}
		if next := fn(ctx, s, raws, r.guardian); next != nil {
			s = next
		}
	}

	return s, nil
}

func tagExpressions(grp token.Group) []tag.Expression {
	exprs := make([]tag.Expression, len(grp.Values))
	for i, v := range grp.Values {
		exprs[i] = tag.Expression{Prefix: v.Prefix, Raw: v.Raw}
	}
	return exprs
}

// applyFreeText folds the residual words into a full-text clause when they
// meet the minimum term length.
func (r *Resolver) applyFreeText(ctx context.Context, s *clause.Scope, words []string) error {
	if len(words) == 0 {
		return nil
	}
	term := strings.Join(words, " ")
	if utf8.RuneCountInString(term) < r.opts.minTermLength {
		r.opts.logger.Debug("residual below minimum term length", "term", term)
		return nil
	}
	if r.opts.engine == nil {
		r.opts.logger.Debug("no search engine configured, ignoring residual", "term", term)
		return nil
	}

	cond, err := r.opts.engine.Compile(ctx, term)
	if err != nil {
		return err
	}
	s.WhereCond(cond)
	return nil
}

func newResult(s *clause.Scope, levels map[core.NotificationLevel]struct{}) *Result {
	res := &Result{Scope: s}
	for level := range levels {
		res.NotificationLevels = append(res.NotificationLevels, level)
	}
	sort.Slice(res.NotificationLevels, func(i, j int) bool {
		return res.NotificationLevels[i] < res.NotificationLevels[j]
	})
	return res
}
