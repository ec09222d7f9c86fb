package rewrite

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/code-tool/prefix-strip/pkg/enumprefix"
)

const namespace = "prefix_strip"

type Stats struct {
	registry *prometheus.Registry

	Lines   *prometheus.CounterVec
	LastRun prometheus.Gauge
}

func NewStats() *Stats {
	s := &Stats{
		registry: prometheus.NewRegistry(),
		Lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lines_total",
				Help:      "The number of lines rewritten, by the rule that handled them",
			},
			[]string{"rule"},
		),
		LastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time of the last successful rewrite",
			},
		),
	}

	s.registry.MustRegister(s.Lines, s.LastRun)

	// expose every rule, even those that matched nothing
	for _, r := range enumprefix.Rules() {
		s.Lines.WithLabelValues(r.String())
	}

	return s
}

func (s *Stats) add(rule enumprefix.Rule, n int) {
	s.Lines.WithLabelValues(rule.String()).Add(float64(n))
}

func (s *Stats) markRun(t time.Time) {
	s.LastRun.Set(float64(t.Unix()))
}

// WriteTextfile stores the collected metrics in the node_exporter textfile
// format.
func (s *Stats) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, s.registry)
}
