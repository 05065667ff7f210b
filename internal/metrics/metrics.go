package metrics

import (
	"github.com/prometheus/client_golang/prometheus"          // Metric types
	"github.com/prometheus/client_golang/prometheus/promauto" // Registration on the default registry
)

var (
	// Registrations counts register attempts by outcome
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "registrations_total",
		Help:      "Register attempts by outcome.",
	}, []string{"outcome"})

	// Logins counts login attempts by outcome
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "logins_total",
		Help:      "Login attempts by outcome.",
	}, []string{"outcome"})

	// AccountMutations counts successful wages deltas and counter increments by field
	AccountMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "account_mutations_total",
		Help:      "Committed account mutations by field.",
	}, []string{"field"})

	// WagerChecks counts wager validations by verdict
	WagerChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "wager_checks_total",
		Help:      "Wager checks by verdict.",
	}, []string{"verdict"})

	// QuestionsServed counts random questions handed out by category
	QuestionsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "questions_served_total",
		Help:      "Random questions served by category.",
	}, []string{"category"})

	// HTTPRequests counts handled requests by route and status
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trivia",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Outcome labels
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)
