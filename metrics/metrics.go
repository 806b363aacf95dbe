package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts calls made to the church API.
type Recorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	logouts  prometheus.Counter
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "church_admin_api_requests_total",
			Help: "Calls made to the church API by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "church_admin_api_request_duration_seconds",
			Help:    "Latency of calls to the church API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "church_admin_forced_logouts_total",
			Help: "Sessions cleared because the API rejected the bearer token.",
		}),
	}
	r.registry.MustRegister(r.requests, r.duration, r.logouts)
	return r
}

// ObserveRequest records one API call. status is 0 when no response arrived.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	r.requests.WithLabelValues(method, route, code).Inc()
	r.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveForcedLogout() {
	r.logouts.Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
