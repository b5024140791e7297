package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salon_queue"

// Registry owns every collector the service exposes on /metrics.
type Registry struct {
	reg *prometheus.Registry

	bookingsCreated  *prometheus.CounterVec
	bookingsRejected *prometheus.CounterVec
	promotions       *prometheus.CounterVec
	expirations      prometheus.Counter
	notifyFailures   prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Registry{
		reg: reg,
		bookingsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings created by kind.",
		}, []string{"kind"}),
		bookingsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "Booking attempts rejected by kind and error code.",
		}, []string{"kind", "code"}),
		promotions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promotions_total",
			Help:      "Bookings moved to GREEN by trigger.",
		}, []string{"source"}),
		expirations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expirations_total",
			Help:      "RED bookings persisted as EXPIRED by compaction.",
		}),
		notifyFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "serving_notify_failures_total",
			Help:      "Serving notifications that could not be delivered.",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) BookingCreated(kind string) {
	r.bookingsCreated.WithLabelValues(kind).Inc()
}

func (r *Registry) BookingRejected(kind, code string) {
	r.bookingsRejected.WithLabelValues(kind, code).Inc()
}

func (r *Registry) Promoted(source string) {
	r.promotions.WithLabelValues(source).Inc()
}

func (r *Registry) Expired(n int) {
	r.expirations.Add(float64(n))
}

func (r *Registry) NotifyFailed() {
	r.notifyFailures.Inc()
}

func (r *Registry) ObserveHTTP(route, method, status string, seconds float64) {
	r.httpRequests.WithLabelValues(route, method, status).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(seconds)
}
