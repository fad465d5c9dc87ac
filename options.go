package topicfilter

import (
	"time"

	"github.com/hupe1980/topicfilter/registry"
	"github.com/hupe1980/topicfilter/search"
)

// DefaultMinTermLength is the minimum residual free-text length (in runes)
// required before a full-text clause is compiled.
const DefaultMinTermLength = 3

type options struct {
	logger        *Logger
	metrics       MetricsCollector
	minTermLength int
	now           func() time.Time
	registry      *registry.Registry
	engine        search.Engine
	tagging       bool
}

func defaultOptions() options {
	return options{
		logger:        NewLogger(nil),
		metrics:       NoopMetricsCollector{},
		minTermLength: DefaultMinTermLength,
		now:           time.Now,
		registry:      registry.New(),
		tagging:       true,
	}
}

// Option configures a Resolver.
type Option func(*options)

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithMinTermLength configures the minimum residual free-text length below
// which no full-text clause is produced.
func WithMinTermLength(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.minTermLength = n
		}
	}
}

// WithNow configures the clock used for date filters and pinned checks.
// Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRegistry configures the custom filter registry consulted for keys
// outside the built-in vocabulary.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithSearchEngine configures the full-text engine compiling residual free
// text. Without an engine, residual text is ignored.
func WithSearchEngine(e search.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithTagging enables or disables "tag:" filtering. Disabled tagging turns
// tag filters into no-ops; "tag_group:" is unaffected.
func WithTagging(enabled bool) Option {
	return func(o *options) {
		o.tagging = enabled
	}
}
