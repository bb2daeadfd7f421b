package measure

import "time"

// Measure keeps a metric per step.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
	// Names returns the metric names in the order they were added.
	Names() []string
}

// Metric accumulates the durations of one step.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	GetDuration() time.Duration
	GetTotal() int64
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
