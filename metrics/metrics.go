package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores the Prometheus collectors used across the service.
type Metrics struct {
	VisitsLogged       *prometheus.CounterVec
	GeoIPRequests      *prometheus.CounterVec
	OrdersCreated      *prometheus.CounterVec
	OrderStatusUpdates *prometheus.CounterVec
	Uploads            *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with an optional
// namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			VisitsLogged: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "visits_logged_total",
				Help:      "Total visit rows written, by traffic source.",
			}, []string{"source"}),
			GeoIPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "geoip_requests_total",
				Help:      "Total geo-IP lookups by outcome.",
			}, []string{"status"}),
			OrdersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_created_total",
				Help:      "Total orders created, by flow branch.",
			}, []string{"branch"}),
			OrderStatusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_status_updates_total",
				Help:      "Total admin status changes, by new status.",
			}, []string{"status"}),
			Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "uploads_total",
				Help:      "Total blob uploads by kind and outcome.",
			}, []string{"kind", "status"}),
		}

		prometheus.MustRegister(
			metricsInstance.VisitsLogged,
			metricsInstance.GeoIPRequests,
			metricsInstance.OrdersCreated,
			metricsInstance.OrderStatusUpdates,
			metricsInstance.Uploads,
		)
	})
	return metricsInstance
}
