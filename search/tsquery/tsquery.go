// Package tsquery compiles residual search terms into a Postgres full-text
// condition over the post search data.
package tsquery

import (
	"context"
	"strings"

	"github.com/hupe1980/topicfilter/clause"
)

// Engine is a stateless compiler targeting Postgres to_tsquery.
type Engine struct {
	// Language is the text search configuration; defaults to "english".
	Language string
}

// New returns an Engine with the default language.
func New() *Engine {
	return &Engine{Language: "english"}
}

// Compile joins the term's words into a conjunctive tsquery and wraps it in
// a membership test against the post search data.
func (e *Engine) Compile(_ context.Context, term string) (clause.Cond, error) {
	lang := e.Language
	if lang == "" {
		lang = "english"
	}

	var quoted []string
	for _, word := range strings.Fields(term) {
		word = sanitize(word)
		if word == "" {
			continue
		}
		quoted = append(quoted, "'"+word+"':*")
	}
	if len(quoted) == 0 {
		return clause.Cond{Expr: "1 = 0"}, nil
	}

	return clause.Cond{
		Expr: "topics.id IN (" +
			"SELECT topic_id FROM post_search_data" +
			" JOIN posts ON posts.id = post_search_data.post_id" +
			" WHERE search_data @@ to_tsquery(?, ?))",
		Args: []any{lang, strings.Join(quoted, " & ")},
	}, nil
}

// sanitize strips the characters that would break out of a tsquery lexeme.
func sanitize(word string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'', '\\', ':', '&', '|', '!', '(', ')':
			return -1
		}
		return r
	}, word)
}
