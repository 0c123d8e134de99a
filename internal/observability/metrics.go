// Package observability registers prometheus metrics for roster operations.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful activity signups per activity.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations per activity.",
	}, []string{"activity"})

	rejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "rejected_operations_total",
		Help:      "Number of roster mutations rejected, grouped by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectedCounter)
}

// RecordSignup increments the signup counter for an activity.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordUnregistration increments the unregistration counter for an activity.
func RecordUnregistration(activity string) {
	unregisterCounter.WithLabelValues(activity).Inc()
}

// RecordRejection increments the rejection counter with a stable reason label.
func RecordRejection(reason string) {
	rejectedCounter.WithLabelValues(reason).Inc()
}
