// Package metrics exposes pipeline counters on a private Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "school_assistant"

// Recorder is the subset the pipeline writes to.
type Recorder interface {
	Intent(category string)
	Outcome(outcome string)
	GenerationAttempt(classification string)
	SourceFailure(source string)
	ContextTokens(n int)
}

// Registry owns every collector and serves them over HTTP.
type Registry struct {
	registry *prometheus.Registry

	intents      *prometheus.CounterVec
	outcomes     *prometheus.CounterVec
	attempts     *prometheus.CounterVec
	sourceErrors *prometheus.CounterVec
	contextSize  prometheus.Histogram
	httpDuration *prometheus.HistogramVec
}

func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intents_total",
			Help:      "Classified utterances by intent category.",
		}, []string{"category"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_total",
			Help:      "Responses by terminal outcome.",
		}, []string{"outcome"}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_attempts_total",
			Help:      "Completion attempts by classification.",
		}, []string{"classification"}),
		sourceErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_failures_total",
			Help:      "Retrieval sources omitted after an error or timeout.",
		}, []string{"source"}),
		contextSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "context_tokens",
			Help:      "Estimated tokens of retrieved context per request.",
			Buckets:   []float64{0, 250, 500, 1000, 2000, 4000, 6000, 8000},
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.intents, r.outcomes, r.attempts, r.sourceErrors, r.contextSize, r.httpDuration,
	)
	return r
}

func (r *Registry) Intent(category string) { r.intents.WithLabelValues(category).Inc() }
func (r *Registry) Outcome(outcome string) { r.outcomes.WithLabelValues(outcome).Inc() }
func (r *Registry) GenerationAttempt(classification string) {
	r.attempts.WithLabelValues(classification).Inc()
}
func (r *Registry) SourceFailure(source string) { r.sourceErrors.WithLabelValues(source).Inc() }
func (r *Registry) ContextTokens(n int)         { r.contextSize.Observe(float64(n)) }

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request latency by matched route.
func (r *Registry) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.httpDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Nop discards everything.
type Nop struct{}

func (Nop) Intent(string)            {}
func (Nop) Outcome(string)           {}
func (Nop) GenerationAttempt(string) {}
func (Nop) SourceFailure(string)     {}
func (Nop) ContextTokens(int)        {}

var (
	_ Recorder = (*Registry)(nil)
	_ Recorder = Nop{}
)
