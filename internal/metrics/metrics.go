package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "relay"

var (
	HTTPInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_in_flight_requests",
		Help:      "In-flight HTTP requests.",
	})

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"method", "route"},
	)

	// ChainTransactions counts confirmed and failed contract transactions
	ChainTransactions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_transactions_total",
			Help:      "Contract transactions by contract, method and outcome.",
		},
		[]string{"contract", "method", "outcome"},
	)

	CapacityCreditsMinted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capacity_credits_minted_total",
			Help:      "Capacity credits minted by network.",
		},
		[]string{"network"},
	)

	PayersRegistered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payers_registered_total",
			Help:      "Funded payer wallets by network.",
		},
		[]string{"network"},
	)

	PayeesDelegated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payees_delegated_total",
			Help:      "Payee addresses added to payment delegations by network.",
		},
		[]string{"network"},
	)

	// IdentityProvisionings counts provisioning runs by outcome and the step they ended on
	IdentityProvisionings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_provisionings_total",
			Help:      "Identity provisioning runs by outcome and final step.",
		},
		[]string{"outcome", "step"},
	)
)

var registerOnce sync.Once

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPInFlight,
			HTTPRequestsTotal,
			HTTPRequestDuration,
			ChainTransactions,
			CapacityCreditsMinted,
			PayersRegistered,
			PayeesDelegated,
			IdentityProvisionings,
		)
	})
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
