package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap is one typed column of the registry: run counters in one map, run gauges in another
// Track and session look up their pointers in their constructors and write through them afterwards
type MetricMap[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the metric named key; a name seen for the first time starts at zero
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, found := m.metrics[key]
	m.mu.RUnlock()
	if found {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, found = m.metrics[key]; !found {
		ptr = new(T)
		m.metrics[key] = ptr
	}
	return ptr
}

func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, found := m.metrics[key]
	return found
}

// Range walks the metrics sorted by name so trackgen dumps and the metrics panel are stable
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.metrics)) {
		fn(k, m.metrics[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.metrics)
}
