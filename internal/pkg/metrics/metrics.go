package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal количество HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration длительность HTTP запросов
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ActGenerationTotal количество сгенерированных актов
	ActGenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "act_generation_total",
			Help: "Total number of act generations",
		},
		[]string{"act_type", "format", "status"},
	)

	// ActGenerationDuration длительность генерации акта
	ActGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "act_generation_duration_seconds",
			Help:    "Duration of act generation in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"format"},
	)

	// ActFileSizeBytes размер сгенерированных файлов
	ActFileSizeBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "act_file_size_bytes",
			Help:    "Size of generated act files in bytes",
			Buckets: []float64{10 * 1024, 50 * 1024, 100 * 1024, 1024 * 1024, 5 * 1024 * 1024, 20 * 1024 * 1024},
		},
		[]string{"format"},
	)

	// ActAppendixTotal количество актов с приложением и без
	ActAppendixTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "act_appendix_total",
			Help: "Number of generated acts by appendix presence",
		},
		[]string{"appendix"},
	)

	// ActPhotosTotal фотографии в приложениях: встроенные и пропущенные
	ActPhotosTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "act_photos_total",
			Help: "Number of photos processed for act appendices",
		},
		[]string{"status"},
	)

	// GotenbergRequestsTotal количество запросов к Gotenberg
	GotenbergRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gotenberg_requests_total",
			Help: "Total number of requests to Gotenberg service",
		},
		[]string{"status"},
	)

	// GotenbergRequestDuration длительность запросов к Gotenberg
	GotenbergRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gotenberg_request_duration_seconds",
			Help:    "Duration of Gotenberg requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
