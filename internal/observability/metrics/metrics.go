package metrics

import "github.com/prometheus/client_golang/prometheus"

// APIMetrics exposes counters/histograms for the booking and chat flows.
type APIMetrics struct {
	bookingsTotal    *prometheus.CounterVec
	chatRepliesTotal *prometheus.CounterVec
	bookingLatency   prometheus.Histogram
}

func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	m := &APIMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "labchat",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Total booking requests by outcome",
		}, []string{"status"}),
		chatRepliesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "labchat",
			Subsystem: "chat",
			Name:      "replies_total",
			Help:      "Total chat replies by responder source",
		}, []string{"source"}),
		bookingLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "labchat",
			Subsystem: "booking",
			Name:      "latency_seconds",
			Help:      "Latency of booking processing including ledger writes",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.chatRepliesTotal, m.bookingLatency)
	return m
}

func (m *APIMetrics) ObserveBooking(status string, seconds float64) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
	m.bookingLatency.Observe(seconds)
}

func (m *APIMetrics) ObserveChatReply(source string) {
	if m == nil {
		return
	}
	m.chatRepliesTotal.WithLabelValues(source).Inc()
}
