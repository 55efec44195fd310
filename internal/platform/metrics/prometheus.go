package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsManager holds the marketplace's Prometheus metrics on a private registry.
type MetricsManager struct {
	Registry          *prometheus.Registry
	MessagesAppended  *prometheus.CounterVec
	OffersResolved    *prometheus.CounterVec
	PaymentsCompleted *prometheus.CounterVec
	AdsPosted         prometheus.Counter
	APIErrors         *prometheus.CounterVec
	APILatency        *prometheus.HistogramVec
}

func NewMetricsManager(namespace string) *MetricsManager {
	registry := prometheus.NewRegistry()

	messagesAppended := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_appended_total",
		Help:      "Messages appended to conversations, by message type.",
	}, []string{"type"})
	offersResolved := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offers_resolved_total",
		Help:      "Offers moved out of pending, by outcome.",
	}, []string{"outcome"})
	paymentsCompleted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_completed_total",
		Help:      "Confirmed payments, by origin (offer or buy_now).",
	}, []string{"origin"})
	adsPosted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ads_posted_total",
		Help:      "Ads posted by sellers.",
	})
	apiErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "API errors by route and error kind.",
	}, []string{"route", "kind"})
	apiLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_latency_seconds",
		Help:      "Latency of API requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	registry.MustRegister(
		messagesAppended,
		offersResolved,
		paymentsCompleted,
		adsPosted,
		apiErrors,
		apiLatency,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return &MetricsManager{
		Registry:          registry,
		MessagesAppended:  messagesAppended,
		OffersResolved:    offersResolved,
		PaymentsCompleted: paymentsCompleted,
		AdsPosted:         adsPosted,
		APIErrors:         apiErrors,
		APILatency:        apiLatency,
	}
}

func (m *MetricsManager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
