// Package metrics holds the service's Prometheus collectors. Counters are
// registered once at init and shared across handlers and usecases.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapbook_quotes_created_total",
		Help: "Quotes issued, by service type and confidence tier.",
	}, []string{"service_type", "confidence"})

	QuotesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapbook_quotes_rejected_total",
		Help: "Photo submissions rejected before pricing, by reason.",
	}, []string{"reason"})

	QuotesBooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snapbook_quotes_booked_total",
		Help: "Quotes converted into engagements.",
	})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snapbook_rate_limited_total",
		Help: "Quote requests denied by the rate limiter.",
	})

	VisionFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snapbook_vision_fallbacks_total",
		Help: "Vision calls that degraded to the conservative default analysis.",
	})
)
