package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LocationChecksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "travelsaathi_location_checks_total",
		Help: "Total number of recorded location fixes",
	})
	InsideZoneTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "travelsaathi_inside_zone_total",
		Help: "Total location fixes that fell inside at least one restricted zone",
	})
	AlertsCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "travelsaathi_alerts_created_total",
		Help: "Total SOS alerts created, by category",
	}, []string{"category"})
	AlertTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "travelsaathi_alert_transitions_total",
		Help: "Total alert status transitions, by target status",
	}, []string{"status"})
	AnalysisJobsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "travelsaathi_analysis_jobs_total",
		Help: "Total analysis jobs, by outcome",
	}, []string{"status"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "travelsaathi_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(LocationChecksTotal)
	prometheus.MustRegister(InsideZoneTotal)
	prometheus.MustRegister(AlertsCreatedTotal)
	prometheus.MustRegister(AlertTransitionsTotal)
	prometheus.MustRegister(AnalysisJobsTotal)
	prometheus.MustRegister(RequestDurationMs)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument records request duration per HTTP method.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		RequestDurationMs.WithLabelValues(r.Method).Observe(float64(time.Since(start).Milliseconds()))
	})
}
