package topicfilter

import "github.com/hupe1980/topicfilter/clause"

var categoriesJoin = clause.Join{
	Kind:  clause.Inner,
	Table: "categories",
	On:    "categories.id = topics.category_id",
}

// filterStatus applies one "status:" value. Every occurrence accumulates as
// a further AND constraint; unknown values fall through to the registry and
// are otherwise ignored.
func (r *Resolver) filterStatus(s *clause.Scope, status string) *clause.Scope {
	switch status {
	case "open":
		s.Where("NOT topics.closed AND NOT topics.archived")
	case "closed":
		s.Where("topics.closed")
	case "archived":
		s.Where("topics.archived")
	case "listed":
		s.Where("topics.visible")
	case "unlisted":
		s.Where("NOT topics.visible")
	case "deleted":
		if r.guardian.CanSeeDeletedTopics(nil) {
			s.IncludeDeleted()
			s.Where("topics.deleted_at IS NOT NULL")
		}
	case "public":
		s.Join(categoriesJoin)
		s.Where("NOT categories.read_restricted")
	default:
		fn, ok := r.opts.registry.Status(status)
		if !ok {
			r.opts.logger.Debug("ignoring unknown status", "status", status)
			break
		}
		if next := fn(s); next != nil {
			return next
		}
	}
	return s
}
