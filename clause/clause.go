// Package clause implements the predicate accumulator built up during one
// query resolution: a conjunction of conditions, a deduplicated join list
// and at most one ordering directive, rendered to SQL on demand.
package clause

import "fmt"

// Cond is one WHERE condition, combined with the others by AND. Args are
// bound positionally to "?" placeholders in Expr.
type Cond struct {
	Expr string
	Args []any
}

// JoinKind selects the join type.
type JoinKind uint8

const (
	Inner JoinKind = iota
	Left
)

// Join is one table join. Joins are deduplicated by alias (or table name
// when no alias is set), so handlers can require the same join without
// coordinating.
type Join struct {
	Kind  JoinKind
	Table string
	Alias string
	On    string
}

func (j Join) name() string {
	if j.Alias != "" {
		return j.Alias
	}
	return j.Table
}

// Order is the single ordering directive of a scope. A directive owns the
// join and conditions it depends on: replacing the directive replaces them
// too.
type Order struct {
	Column    string
	Ascending bool
	Join      *Join
	Conds     []Cond
}

// Scope is the mutable predicate accumulator. It is owned by exactly one
// resolution call; concurrent resolutions must each use their own Scope.
type Scope struct {
	conds       []Cond
	joins       []Join
	order       *Order
	none        bool
	distinct    bool
	withDeleted bool
	tagAlias    int
}

// New returns the identity scope: no conditions, no joins, no ordering.
func New() *Scope {
	return &Scope{}
}

// Where appends one condition.
func (s *Scope) Where(expr string, args ...any) *Scope {
	s.conds = append(s.conds, Cond{Expr: expr, Args: args})
	return s
}

// WhereCond appends an already built condition.
func (s *Scope) WhereCond(c Cond) *Scope {
	s.conds = append(s.conds, c)
	return s
}

// Join adds a join unless one with the same alias is already present.
func (s *Scope) Join(j Join) *Scope {
	for _, existing := range s.joins {
		if existing.name() == j.name() {
			return s
		}
	}
	s.joins = append(s.joins, j)
	return s
}

// SetOrder replaces the current ordering directive. Last write wins.
func (s *Scope) SetOrder(o Order) {
	s.order = &o
}

// Order returns the current ordering directive, or nil.
func (s *Scope) Order() *Order {
	return s.order
}

// SetNone marks the scope unsatisfiable: no topic can match.
func (s *Scope) SetNone() {
	s.none = true
}

// IsNone reports whether the scope has been marked unsatisfiable.
func (s *Scope) IsNone() bool {
	return s.none
}

// SetDistinct requests duplicate elimination; needed once a join can yield
// several rows per topic.
func (s *Scope) SetDistinct() {
	s.distinct = true
}

// IncludeDeleted marks that the executing store must lift its default
// "not deleted" scoping.
func (s *Scope) IncludeDeleted() {
	s.withDeleted = true
}

// WithDeleted reports whether deleted topics are part of the scope.
func (s *Scope) WithDeleted() bool {
	return s.withDeleted
}

// NextTagAlias returns the next generated topic_tags join alias (tt1, tt2,
// ...). The counter lives in the scope, keeping aliasing deterministic.
func (s *Scope) NextTagAlias() string {
	s.tagAlias++
	return fmt.Sprintf("tt%d", s.tagAlias)
}

// Conds returns the accumulated conditions, excluding those owned by the
// ordering directive.
func (s *Scope) Conds() []Cond {
	return s.conds
}

// Joins returns the accumulated joins, excluding the one owned by the
// ordering directive.
func (s *Scope) Joins() []Join {
	return s.joins
}
