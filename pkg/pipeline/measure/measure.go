package measure

import (
	"sync"
)

type DefaultMeasure struct {
	mu    sync.Mutex
	Steps map[string]Metric
	names []string
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Steps: make(map[string]Metric),
	}
}

// AddMetric registers a metric for name. Adding a name twice returns the existing metric.
func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.Steps[name]; ok {
		return mt
	}

	mt := &DefaultMetric{
		mu: &sync.Mutex{},
	}
	m.Steps[name] = mt
	m.names = append(m.names, name)

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Steps[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make(map[string]Metric, len(m.Steps))
	for name, mt := range m.Steps {
		res[name] = mt
	}

	return res
}

func (m *DefaultMeasure) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.names...)
}

var _ Measure = (*DefaultMeasure)(nil)
