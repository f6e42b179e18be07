package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mailchimp_proxy"

// Subscribe results.
const (
	ResultBadRequest    = "bad_request"
	ResultCreated       = "created"
	ResultUpdated       = "updated"
	ResultUnchanged     = "unchanged"
	ResultUpstreamError = "upstream_error"
)

// Metrics holds the Prometheus collectors of the proxy
type Metrics struct {
	SubscribeRequests *prometheus.CounterVec
	SubscribeDuration prometheus.Histogram

	registry *prometheus.Registry
}

func New() *Metrics {
	m := &Metrics{
		SubscribeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subscribe_requests_total",
			Help:      "Newsletter subscribe requests by result.",
		}, []string{"result"}),
		SubscribeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "subscribe_duration_seconds",
			Help:      "Time spent talking to the mailing list provider per subscribe request.",
			Buckets:   prometheus.DefBuckets,
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.SubscribeRequests,
		m.SubscribeDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) IncSubscribe(result string) {
	if m == nil || m.SubscribeRequests == nil {
		return
	}

	m.SubscribeRequests.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSubscribe(seconds float64) {
	if m == nil || m.SubscribeDuration == nil {
		return
	}

	m.SubscribeDuration.Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
