package topicfilter

import (
	"github.com/hupe1980/topicfilter/clause"
	"github.com/hupe1980/topicfilter/core"
)

// Result is the outcome of one resolution: the predicate accumulator to be
// executed by the topic storage engine, plus the notification levels the
// "in:" filter touched. The caller must treat it as read-only.
type Result struct {
	Scope *clause.Scope

	// NotificationLevels lists the levels an "in:" filter selected, sorted
	// and deduplicated. Empty when no "in:" level filter was present.
	NotificationLevels []core.NotificationLevel
}
