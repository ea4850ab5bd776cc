package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "museums", Name: "http_requests_total", Help: "Number of handled HTTP requests by method, route and status code."},
		[]string{"method", "route", "code"},
	)
	StoreUp = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "museums", Name: "store_up", Help: "1 when the last readiness check reached the document store."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(StoreUp)
}
