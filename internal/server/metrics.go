package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tartampluch/go-hijri/internal/config"
)

// metrics owns a private registry so several servers can coexist in one
// process.
type metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	conversions *prometheus.CounterVec
	feedBytes   prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.MetricNamespace,
				Name:      config.MetricRequests,
				Help:      config.MetricHelpReq,
			},
			[]string{config.MetricLabelRoute, config.MetricLabelCode},
		),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.MetricNamespace,
				Name:      config.MetricConversions,
				Help:      config.MetricHelpConv,
			},
			[]string{config.MetricLabelCal, config.MetricLabelResult},
		),
		feedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: config.MetricNamespace,
			Name:      config.MetricFeedBytes,
			Help:      config.MetricHelpFeed,
		}),
	}
	m.registry.MustRegister(
		m.requests,
		m.conversions,
		m.feedBytes,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// instrument counts every response by route pattern and status code.
func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := config.MetricRouteNone
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}

// conversion counts one API conversion. Calendar names other than the two
// supported ones share a single series.
func (m *metrics) conversion(calendar string, err error) {
	switch calendar {
	case config.CalendarHijri, config.CalendarGregorian:
	default:
		calendar = config.MetricCalOther
	}
	result := config.MetricResultOK
	if err != nil {
		result = config.MetricResultError
	}
	m.conversions.WithLabelValues(calendar, result).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
