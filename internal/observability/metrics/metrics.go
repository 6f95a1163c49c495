package metrics

import "github.com/prometheus/client_golang/prometheus"

// ConversationMetrics exposes counters/histograms for the chat pipeline.
type ConversationMetrics struct {
	messagesTotal       *prometheus.CounterVec
	guardrailRejections *prometheus.CounterVec
	retrievalLatency    prometheus.Histogram
	generationLatency   *prometheus.HistogramVec
}

func NewConversationMetrics(reg prometheus.Registerer) *ConversationMetrics {
	m := &ConversationMetrics{
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nztours",
			Subsystem: "conversation",
			Name:      "messages_total",
			Help:      "Total chat messages processed",
		}, []string{"intent", "status"}),
		guardrailRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nztours",
			Subsystem: "conversation",
			Name:      "guardrail_rejections_total",
			Help:      "Messages rejected by input validation",
		}, []string{"reason"}),
		retrievalLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nztours",
			Subsystem: "conversation",
			Name:      "retrieval_latency_seconds",
			Help:      "Latency of vector index searches",
			Buckets:   prometheus.DefBuckets,
		}),
		generationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nztours",
			Subsystem: "conversation",
			Name:      "generation_latency_seconds",
			Help:      "Latency of LLM response generation",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"intent"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.messagesTotal, m.guardrailRejections, m.retrievalLatency, m.generationLatency)
	return m
}

func (m *ConversationMetrics) ObserveMessage(intent, status string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(intent, status).Inc()
}

func (m *ConversationMetrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.guardrailRejections.WithLabelValues(reason).Inc()
}

func (m *ConversationMetrics) ObserveRetrievalLatency(seconds float64) {
	if m == nil {
		return
	}
	m.retrievalLatency.Observe(seconds)
}

func (m *ConversationMetrics) ObserveGenerationLatency(intent string, seconds float64) {
	if m == nil {
		return
	}
	m.generationLatency.WithLabelValues(intent).Observe(seconds)
}
