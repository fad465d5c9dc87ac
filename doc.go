// Package topicfilter resolves free-form topic search strings into
// composable predicates.
//
// A query string like
//
//	category:bugs -tag:wip status:open order:likes-asc quick fix
//
// is tokenized into keyword filters and residual free text, validated per
// filter key, resolved against the viewer's permissions, and folded into a
// single predicate accumulator (a clause.Scope) plus an optional ordering
// directive and a notification-level side channel.
//
// # Quick Start
//
//	r, err := topicfilter.New(guardian, categoryStore, tagStore,
//	    topicfilter.WithSearchEngine(tsquery.New()),
//	)
//	if err != nil {
//	    return err
//	}
//
//	res, err := r.Resolve(ctx, "category:bugs status:open quick fix")
//	if err != nil {
//	    return err
//	}
//	sql, args := res.Scope.SQL()
//
// # Error Policy
//
// Malformed user input never produces an error: unknown filter keys are
// ignored, invalid values skip their filter, and constraints that resolve
// to nothing mark the scope unsatisfiable instead of silently widening the
// result. Only collaborator failures (stores, search engine) surface as
// errors.
//
// # Extension
//
// Filter keys outside the built-in vocabulary are dispatched to a
// registry.Registry supplied via WithRegistry; the same registry extends
// "order:" keys and "status:" values.
package topicfilter
