package preview

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"docsearch/internal/model"
)

// Load outcomes recorded by Metrics.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeStale   = "stale"
)

// Metrics holds the preview collectors. A nil *Metrics records nothing.
type Metrics struct {
	opened       *prometheus.CounterVec
	loads        *prometheus.CounterVec
	loadDuration prometheus.Histogram
	active       prometheus.Gauge
}

// NewMetrics creates the preview collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		opened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "preview_sessions_opened_total",
				Help: "Preview sessions opened, by document type.",
			},
			[]string{"type"},
		),
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "preview_loads_total",
				Help: "Renderer load completions, by outcome.",
			},
			[]string{"outcome"},
		),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "preview_load_duration_seconds",
			Help:    "Time spent waiting on the renderer.",
			Buckets: prometheus.DefBuckets,
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "preview_sessions_active",
			Help: "Preview sessions currently open.",
		}),
	}
	for _, c := range []prometheus.Collector{m.opened, m.loads, m.loadDuration, m.active} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) sessionOpened(t model.Type) {
	if m == nil {
		return
	}
	m.opened.WithLabelValues(string(t)).Inc()
	m.active.Inc()
}

func (m *Metrics) sessionClosed() {
	if m == nil {
		return
	}
	m.active.Dec()
}

func (m *Metrics) loadDone(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(outcome).Inc()
	m.loadDuration.Observe(d.Seconds())
}
