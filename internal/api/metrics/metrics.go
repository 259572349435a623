package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

var (
	// RegistrationsTotal counts successful account registrations by role.
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Number of successful account registrations.",
	}, []string{"role"})

	// LoginsTotal counts successful logins by role.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Number of successful logins.",
	}, []string{"role"})

	// BookingsTotal counts appointments booked through the API.
	BookingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_total",
		Help:      "Number of appointments booked.",
	})

	// AgentRequestsTotal counts chat agent requests by resolved agent type.
	AgentRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "agent_requests_total",
		Help:      "Number of assistant chat requests handled.",
	}, []string{"agent"})

	// InvoicesIssuedTotal counts invoices generated on visit completion.
	InvoicesIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_issued_total",
		Help:      "Number of invoices issued.",
	})

	// LowStockItems tracks how many items sit at or below their warning
	// threshold, per hospital. Refreshed on every inventory mutation.
	LowStockItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "inventory_low_stock_items",
		Help:      "Inventory items at or below their warning threshold.",
	}, []string{"hospital"})
)
