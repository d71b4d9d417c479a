package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "palefo_client",
			Name:      "requests_total",
			Help:      "API operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)

	fallbackSwitchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "palefo_client",
			Name:      "fallback_switches_total",
			Help:      "One-shot switches from the primary to the fallback base URL.",
		},
	)

	corsBlockedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "palefo_client",
			Name:      "cors_blocked_total",
			Help:      "Requests rejected by cross-origin restrictions.",
		},
	)
)
