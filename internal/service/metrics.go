package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the domain counters. A nil *Metrics records nothing.
type Metrics struct {
	documentsProcessed *prometheus.CounterVec
	pipelineDuration   prometheus.Histogram
	flashcardReviews   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		documentsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tutor_documents_processed_total",
				Help: "Processing pipeline runs by outcome.",
			},
			[]string{"status"},
		),
		pipelineDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tutor_pipeline_duration_seconds",
				Help:    "Duration of processing pipeline runs.",
				Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
		flashcardReviews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tutor_flashcard_reviews_total",
				Help: "Flashcard reviews by outcome.",
			},
			[]string{"outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.documentsProcessed, m.pipelineDuration, m.flashcardReviews} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeProcess(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.documentsProcessed.WithLabelValues(status).Inc()
	m.pipelineDuration.Observe(d.Seconds())
}

func (m *Metrics) observeReview(correct bool) {
	if m == nil {
		return
	}
	m.flashcardReviews.WithLabelValues(reviewOutcome(correct)).Inc()
}

func reviewOutcome(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}
