package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GatewayOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tenant", Name: "gateway_operations_total", Help: "Completed gateway operations by collection and operation."},
		[]string{"collection", "operation"},
	)
	GatewayRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tenant", Name: "gateway_rejected_total", Help: "Gateway requests rejected before touching the store, by reason."},
		[]string{"reason"},
	)
	UploadsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tenant", Name: "uploads_total", Help: "Processed uploads by extraction outcome."},
		[]string{"extraction"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tenant", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tenant", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(GatewayOperations)
	reg.MustRegister(GatewayRejected)
	reg.MustRegister(UploadsProcessed)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
