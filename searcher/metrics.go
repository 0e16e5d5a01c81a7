package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	Duration    time.Duration
	Evaluations int64 // Candidate loss sets scored
}

type MetricsCollector interface {
	Start()
	AddEvaluation()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime   time.Time
	evaluations atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
}

func (m *metricsCollector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		Duration:    time.Since(m.startTime),
		Evaluations: m.evaluations.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddEvaluation()          {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
