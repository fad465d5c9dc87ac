package clause

import "strings"

// Placeholders returns n comma-separated "?" markers for an IN list.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

// SQL renders the scope as a SELECT over the topics table, returning the
// statement and its positional arguments.
func (s *Scope) SQL() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	if s.distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString("topics.* FROM topics")

	joins := s.joins
	if s.order != nil && s.order.Join != nil {
		joins = appendJoin(joins, *s.order.Join)
	}
	for _, j := range joins {
		if j.Kind == Left {
			b.WriteString(" LEFT JOIN ")
		} else {
			b.WriteString(" INNER JOIN ")
		}
		b.WriteString(j.Table)
		if j.Alias != "" {
			b.WriteString(" ")
			b.WriteString(j.Alias)
		}
		b.WriteString(" ON ")
		b.WriteString(j.On)
	}

	var args []any
	if s.none {
		b.WriteString(" WHERE 1 = 0")
	} else {
		conds := s.conds
		if s.order != nil {
			conds = append(conds[:len(conds):len(conds)], s.order.Conds...)
		}
		for i, c := range conds {
			if i == 0 {
				b.WriteString(" WHERE (")
			} else {
				b.WriteString(" AND (")
			}
			b.WriteString(c.Expr)
			b.WriteString(")")
			args = append(args, c.Args...)
		}
	}

	if s.order != nil {
		b.WriteString(" ORDER BY ")
		b.WriteString(s.order.Column)
		if s.order.Ascending {
			b.WriteString(" ASC")
		} else {
			b.WriteString(" DESC")
		}
	}

	return b.String(), args
}

func appendJoin(joins []Join, j Join) []Join {
	for _, existing := range joins {
		if existing.name() == j.name() {
			return joins
		}
	}
	return append(joins[:len(joins):len(joins)], j)
}
