// Package blevefts implements the full-text engine on top of an in-memory
// bleve index. Posts are indexed with their topic id; compiling a term runs
// the search and produces a topic-id membership condition.
package blevefts

import (
	"context"
	"fmt"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/blevesearch/bleve/v2"

	"github.com/hupe1980/topicfilter/clause"
	"github.com/hupe1980/topicfilter/core"
)

type post struct {
	TopicID int64  `json:"topic_id"`
	Text    string `json:"text"`
}

// Engine is a bleve-backed search engine.
type Engine struct {
	idx   bleve.Index
	limit int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimit caps the number of post hits considered per compile.
func WithLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.limit = limit
		}
	}
}

// New creates an Engine with an empty in-memory index.
func New(opts ...Option) (*Engine, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("blevefts: create index: %w", err)
	}

	e := &Engine{idx: idx, limit: 1000}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// IndexPost adds or replaces a post's text under the given topic.
func (e *Engine) IndexPost(topicID core.TopicID, postID int64, text string) error {
	doc := post{TopicID: int64(topicID), Text: text}
	if err := e.idx.Index(strconv.FormatInt(postID, 10), doc); err != nil {
		return fmt.Errorf("blevefts: index post %d: %w", postID, err)
	}
	return nil
}

// DeletePost removes a post from the index.
func (e *Engine) DeletePost(postID int64) error {
	return e.idx.Delete(strconv.FormatInt(postID, 10))
}

// Close releases the index.
func (e *Engine) Close() error {
	return e.idx.Close()
}

// Compile runs the term against the index and returns a condition matching
// the topics of the hit posts. No hits compiles to an unsatisfiable
// condition, mirroring an empty IN list.
func (e *Engine) Compile(ctx context.Context, term string) (clause.Cond, error) {
	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(term), e.limit, 0, false)
	req.Fields = []string{"topic_id"}

	res, err := e.idx.SearchInContext(ctx, req)
	if err != nil {
		return clause.Cond{}, fmt.Errorf("blevefts: search: %w", err)
	}

	ids := roaring64.New()
	for _, hit := range res.Hits {
		if v, ok := hit.Fields["topic_id"].(float64); ok {
			ids.Add(uint64(v))
		}
	}
	if ids.IsEmpty() {
		return clause.Cond{Expr: "1 = 0"}, nil
	}

	args := make([]any, 0, ids.GetCardinality())
	it := ids.Iterator()
	for it.HasNext() {
		args = append(args, int64(it.Next()))
	}
	return clause.Cond{
		Expr: "topics.id IN (" + clause.Placeholders(len(args)) + ")",
		Args: args,
	}, nil
}
