// Package metrics holds the server's Prometheus collectors on a private
// registry exposed by the ops router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "futureletter"

type Metrics struct {
	Registry *prometheus.Registry

	LettersAdded        prometheus.Counter
	LettersCancelled    prometheus.Counter
	SignIns             *prometheus.CounterVec
	ActiveSubscriptions prometheus.Gauge
	RPCRequests         *prometheus.CounterVec
}

// New registers all collectors, plus the Go runtime and process collectors,
// on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		LettersAdded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "letters_added_total",
			Help:      "Letters scheduled for delivery.",
		}),
		LettersCancelled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "letters_cancelled_total",
			Help:      "Pending letters removed by their owner.",
		}),
		SignIns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sign_ins_total",
			Help:      "Sessions issued, by sign-in method.",
		}, []string{"method"}),
		ActiveSubscriptions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_subscriptions",
			Help:      "Open pending-letter subscriptions.",
		}),
		RPCRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Handled gRPC calls, by method and status code.",
		}, []string{"method", "code"}),
	}
}
