package topicfilter

import (
	"strings"

	"github.com/hupe1980/topicfilter/clause"
	"github.com/hupe1980/topicfilter/value"
)

var firstPostsJoin = clause.Join{
	Kind:  clause.Inner,
	Table: "posts",
	Alias: "first_posts",
	On:    "first_posts.topic_id = topics.id AND first_posts.post_number = 1",
}

var usersJoin = clause.Join{
	Kind:  clause.Inner,
	Table: "users",
	On:    "users.id = topics.user_id",
}

// filterDate applies one date bound. before selects "<=", otherwise ">=".
// An unusable value skips the bound, leaving the rest of the query intact.
func (r *Resolver) filterDate(s *clause.Scope, column string, values []string, before bool) {
	bound, ok := value.LastDate(values, r.opts.now())
	if !ok {
		r.opts.logger.Debug("skipping unusable date bound", "column", column)
		return
	}
	s.Where(column+" "+operator(before)+" ?", bound)
}

// filterCount applies one numeric bound. max selects "<=", otherwise ">=".
func (r *Resolver) filterCount(s *clause.Scope, column string, values []string, max bool) {
	bound, ok := value.LastCount(values)
	if !ok {
		r.opts.logger.Debug("skipping unusable numeric bound", "column", column)
		return
	}
	s.Where(column+" "+operator(max)+" ?", bound)
}

// filterFirstPostCount bounds the like count of each topic's first post.
func (r *Resolver) filterFirstPostCount(s *clause.Scope, values []string, max bool) {
	bound, ok := value.LastCount(values)
	if !ok {
		return
	}
	s.Join(firstPostsJoin)
	s.Where("first_posts.like_count "+operator(max)+" ?", bound)
}

func (r *Resolver) filterCreatedBy(s *clause.Scope, usernames []string) {
	if len(usernames) == 0 {
		return
	}
	args := make([]any, len(usernames))
	for i, name := range usernames {
		args[i] = strings.ToLower(name)
	}
	s.Join(usersJoin)
	s.Where("users.username_lower IN ("+clause.Placeholders(len(args))+")", args...)
}

func operator(upper bool) string {
	if upper {
		return "<="
	}
	return ">="
}
