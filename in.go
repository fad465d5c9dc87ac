package topicfilter

import (
	"sort"
	"strings"

	"github.com/hupe1980/topicfilter/clause"
	"github.com/hupe1980/topicfilter/core"
)

var topicUsersJoin = clause.Join{
	Kind:  clause.Inner,
	Table: "topic_users",
	On:    "topic_users.topic_id = topics.id",
}

// filterIn applies the "in:" filter. "pinned" and "bookmarked" are
// special-cased; every other value is a comma-joined list of notification
// level names collected into the side-channel set. Anonymous viewers have
// no personalized state: any non-pinned value empties the result.
func (r *Resolver) filterIn(s *clause.Scope, values []string, levels map[core.NotificationLevel]struct{}) {
	vals := dedupe(values)

	if remove(&vals, "pinned") {
		s.Where(
			"topics.pinned_at IS NOT NULL AND topics.pinned_until > topics.pinned_at AND ? < topics.pinned_until",
			r.opts.now(),
		)
	}

	if !r.guardian.Authenticated() {
		if len(vals) > 0 {
			s.SetNone()
		}
		return
	}

	if remove(&vals, "bookmarked") {
		s.Join(topicUsersJoin)
		s.Where("topic_users.bookmarked AND topic_users.user_id = ?", int64(r.guardian.UserID()))
	}

	if len(vals) == 0 {
		return
	}

	for _, v := range vals {
		for _, name := range strings.Split(v, ",") {
			if level, ok := core.ParseNotificationLevel(name); ok {
				levels[level] = struct{}{}
			} else {
				r.opts.logger.Debug("ignoring unknown notification level", "name", name)
			}
		}
	}
	if len(levels) == 0 {
		// Level names were supplied but none is valid; an empty IN list can
		// match nothing.
		s.SetNone()
		return
	}

	sorted := make([]core.NotificationLevel, 0, len(levels))
	for level := range levels {
		sorted = append(sorted, level)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	args := make([]any, 0, len(sorted)+1)
	for _, level := range sorted {
		args = append(args, int(level))
	}
	args = append(args, int64(r.guardian.UserID()))

	s.Join(topicUsersJoin)
	s.Where(
		"topic_users.notification_level IN ("+clause.Placeholders(len(sorted))+") AND topic_users.user_id = ?",
		args...,
	)
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// remove deletes the first occurrence of v and reports whether it was
// present.
func remove(values *[]string, v string) bool {
	for i, existing := range *values {
		if existing == v {
			*values = append((*values)[:i], (*values)[i+1:]...)
			return true
		}
	}
	return false
}
