// Package search defines the interface to the external full-text engine
// that compiles a query's residual free text into a predicate condition.
//
// # Built-in Implementations
//
// The tsquery subpackage compiles terms to a Postgres to_tsquery subquery;
// the blevefts subpackage runs the term against an in-memory bleve index
// and produces a topic-id condition.
package search

import (
	"context"

	"github.com/hupe1980/topicfilter/clause"
)

// Engine compiles a free-text term into a condition usable inside a scope.
type Engine interface {
	Compile(ctx context.Context, term string) (clause.Cond, error)
}
