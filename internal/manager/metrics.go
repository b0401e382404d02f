package manager

import "github.com/prometheus/client_golang/prometheus"

var (
	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stegod",
			Subsystem: "manager",
			Name:      "operations_total",
			Help:      "Completed stateful operations by kind",
		},
		[]string{"op"},
	)

	hygieneTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stegod",
			Subsystem: "manager",
			Name:      "hygiene_total",
			Help:      "Hygiene actions performed by kind",
		},
		[]string{"action"},
	)

	capacityRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stegod",
			Subsystem: "manager",
			Name:      "capacity_retries_total",
			Help:      "Encode attempts retried with an enlarged generation budget",
		},
	)

	capacityFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stegod",
			Subsystem: "manager",
			Name:      "capacity_failures_total",
			Help:      "Encode requests that failed after the single retry",
		},
	)
)

func init() {
	prometheus.MustRegister(operationsTotal, hygieneTotal, capacityRetriesTotal, capacityFailuresTotal)
}
