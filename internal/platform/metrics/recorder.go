package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riskibarqy/music-league/internal/platform/resilience"
)

const namespace = "music_league"

// Recorder owns the service's Prometheus collectors. A nil *Recorder drops
// every observation, so components can take one unconditionally.
type Recorder struct {
	gatherer prometheus.Gatherer

	sheetFetches      *prometheus.CounterVec
	sheetFetchLatency *prometheus.HistogramVec
	enrichmentLookups *prometheus.CounterVec
	calculations      *prometheus.CounterVec
	countedVotes      prometheus.Counter
	droppedVotes      *prometheus.CounterVec
	circuitState      *prometheus.GaugeVec
}

// NewRecorder registers collectors on reg. Passing a fresh
// prometheus.NewRegistry() keeps tests isolated from the global registry.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		gatherer: reg,
		sheetFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sheet_fetches_total",
				Help:      "Sheet tab fetches by source, tab and outcome.",
			},
			[]string{"source", "tab", "outcome"},
		),
		sheetFetchLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sheet_fetch_duration_seconds",
				Help:      "Latency of sheet tab fetches.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"source", "tab"},
		),
		enrichmentLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "enrichment_lookups_total",
				Help:      "Track metadata lookups by outcome.",
			},
			[]string{"outcome"},
		),
		calculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "standings_calculations_total",
				Help:      "Cumulative points calculations by scope.",
			},
			[]string{"scope"},
		),
		countedVotes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "standings_counted_votes_total",
				Help:      "Votes attributed to a competitor.",
			},
		),
		droppedVotes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "standings_dropped_votes_total",
				Help:      "Votes skipped by the calculator, by reason.",
			},
			[]string{"reason"},
		),
		circuitState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_open",
				Help:      "1 when the named circuit breaker is open or half open.",
			},
			[]string{"name"},
		),
	}
}

func (r *Recorder) ObserveSheetFetch(source, tab string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.sheetFetches.WithLabelValues(source, tab, outcome).Inc()
	r.sheetFetchLatency.WithLabelValues(source, tab).Observe(duration.Seconds())
}

// Enrichment outcomes.
const (
	EnrichmentHit      = "hit"
	EnrichmentNotFound = "not_found"
	EnrichmentError    = "error"
	EnrichmentSkipped  = "skipped"
)

func (r *Recorder) IncEnrichment(outcome string) {
	if r == nil {
		return
	}
	r.enrichmentLookups.WithLabelValues(outcome).Inc()
}

// VoteTally is what the recorder needs from a calculation.
type VoteTally struct {
	Counted            int
	DanglingSubmission int
	DanglingCompetitor int
	ExcludedRound      int
}

func (r *Recorder) ObserveCalculation(scope string, tally VoteTally) {
	if r == nil {
		return
	}
	r.calculations.WithLabelValues(scope).Inc()
	r.countedVotes.Add(float64(tally.Counted))
	r.droppedVotes.WithLabelValues("dangling_submission").Add(float64(tally.DanglingSubmission))
	r.droppedVotes.WithLabelValues("dangling_competitor").Add(float64(tally.DanglingCompetitor))
	r.droppedVotes.WithLabelValues("excluded_round").Add(float64(tally.ExcludedRound))
}

// CircuitStateChanged matches resilience.CircuitBreakerConfig.OnStateChange.
func (r *Recorder) CircuitStateChanged(name string, _, to resilience.CircuitState) {
	if r == nil {
		return
	}
	value := 0.0
	if to != resilience.CircuitStateClosed {
		value = 1
	}
	r.circuitState.WithLabelValues(name).Set(value)
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
