// Package registry is the plugin boundary of the resolver: externally
// registered handlers for filter keys, "order:" keys and "status:" values
// outside the built-in vocabulary. The built-in vocabulary always wins; the
// registry is consulted only after it misses.
package registry

import (
	"context"

	"github.com/hupe1980/topicfilter/clause"
	"github.com/hupe1980/topicfilter/core"
)

// FilterFunc handles a custom filter key. It receives the scope, the raw
// values supplied for the key and the viewer's guardian. A non-nil return
// value replaces the scope; nil keeps it unchanged.
type FilterFunc func(ctx context.Context, s *clause.Scope, values []string, g core.Guardian) *clause.Scope

// OrderFunc handles a custom "order:<key>" with the resolved direction.
// A non-nil return value replaces the scope.
type OrderFunc func(ctx context.Context, s *clause.Scope, ascending bool, g core.Guardian) *clause.Scope

// StatusFunc handles a custom "status:<name>" value. A non-nil return value
// replaces the scope.
type StatusFunc func(s *clause.Scope) *clause.Scope

type entry[T any] struct {
	key string
	fn  T
}

// Registry holds ordered handler mappings. Lookups return the first
// registration for a key, so earlier registrations win.
type Registry struct {
	filters  []entry[FilterFunc]
	orders   []entry[OrderFunc]
	statuses []entry[StatusFunc]
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// RegisterFilter adds a handler for a filter key.
func (r *Registry) RegisterFilter(key string, fn FilterFunc) {
	r.filters = append(r.filters, entry[FilterFunc]{key: key, fn: fn})
}

// RegisterOrder adds a handler for an ordering key (without the "order:"
// namespace).
func (r *Registry) RegisterOrder(key string, fn OrderFunc) {
	r.orders = append(r.orders, entry[OrderFunc]{key: key, fn: fn})
}

// RegisterStatus adds a handler for a status value.
func (r *Registry) RegisterStatus(name string, fn StatusFunc) {
	r.statuses = append(r.statuses, entry[StatusFunc]{key: name, fn: fn})
}

// Filter returns the first handler registered for the key.
func (r *Registry) Filter(key string) (FilterFunc, bool) {
	return lookup(r.filters, key)
}

// Order returns the first handler registered for the ordering key.
func (r *Registry) Order(key string) (OrderFunc, bool) {
	return lookup(r.orders, key)
}

// Status returns the first handler registered for the status value.
func (r *Registry) Status(name string) (StatusFunc, bool) {
	return lookup(r.statuses, name)
}

func lookup[T any](entries []entry[T], key string) (T, bool) {
	for _, e := range entries {
		if e.key == key {
			return e.fn, true
		}
	}
	var zero T
	return zero, false
}
