package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics счетчики кэша
type Metrics struct {
	Hits   prometheus.Counter
	Misses prometheus.Counter
	Items  prometheus.Gauge
	Bytes  prometheus.Gauge
}

// NewMetrics регистрирует метрики кэша в reg. При nil reg метрики не регистрируются.
func NewMetrics(reg prometheus.Registerer, name string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"cache": name}

	return &Metrics{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Name:        "cache_hits_total",
			Help:        "Number of cache hits",
			ConstLabels: labels,
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Name:        "cache_misses_total",
			Help:        "Number of cache misses",
			ConstLabels: labels,
		}),
		Items: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "cache_items_count",
			Help:        "Number of items in cache",
			ConstLabels: labels,
		}),
		Bytes: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "cache_size_bytes",
			Help:        "Total size of cached values in bytes",
			ConstLabels: labels,
		}),
	}
}
