package observability

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/riskibarqy/league-manager/internal/usecase"
)

const metricsNamespace = "league_manager"

// DisciplineMetrics records recompute passes. It satisfies
// usecase.RecalculationObserver.
type DisciplineMetrics struct {
	registry   *prometheus.Registry
	passes     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	archived   prometheus.Counter
	created    prometheus.Counter
	lookupGaps prometheus.Counter
}

var _ usecase.RecalculationObserver = (*DisciplineMetrics)(nil)

func NewDisciplineMetrics() (*DisciplineMetrics, error) {
	registry := prometheus.NewRegistry()
	m := &DisciplineMetrics{
		registry: registry,
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "discipline",
			Name:      "recalculations_total",
			Help:      "Recompute passes by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "discipline",
			Name:      "recalculation_duration_seconds",
			Help:      "Wall time of a recompute pass.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"outcome"}),
		archived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "discipline",
			Name:      "suspensions_archived_total",
			Help:      "Active suspensions archived by recompute passes.",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "discipline",
			Name:      "suspensions_created_total",
			Help:      "Suspensions created by recompute passes.",
		}),
		lookupGaps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "discipline",
			Name:      "next_match_gaps_total",
			Help:      "Trigger matches with no later match in season order.",
		}),
	}

	collectorsToRegister := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.passes,
		m.duration,
		m.archived,
		m.created,
		m.lookupGaps,
	}
	for _, c := range collectorsToRegister {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *DisciplineMetrics) ObserveRecalculation(_ string, result discipline.RecalculationResult, elapsed time.Duration, err error) {
	outcome := recalculationOutcome(err)
	m.passes.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	if err != nil {
		return
	}
	m.archived.Add(float64(result.Archived))
	m.created.Add(float64(result.Created))
	m.lookupGaps.Add(float64(len(result.Errors)))
}

func recalculationOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, usecase.ErrInvalidInput):
		return "rejected"
	default:
		return "failed"
	}
}

// Registry exposes the registry so other components can add collectors.
func (m *DisciplineMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *DisciplineMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
