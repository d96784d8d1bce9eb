// Package status is the run telemetry registry shared by the track, spawner and session
package status

import (
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
)

// Registry is the metrics facade
// Components cache metric pointers at construction and write atomics directly per frame
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics of all kinds
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Metric is one formatted registry entry
type Metric struct {
	Key   string
	Value string
}

// Snapshot returns every metric formatted, ints then floats then strings, each in key order
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Metric{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Metric{k, strconv.FormatFloat(v.Get(), 'f', 2, 64)})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Metric{k, v.Load()})
	})
	return out
}

// WriteTo prints the snapshot as aligned "key value" lines
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	snap := r.Snapshot()
	width := 0
	for _, m := range snap {
		width = max(width, len(m.Key))
	}
	var total int64
	for _, m := range snap {
		n, err := fmt.Fprintf(w, "%-*s  %s\n", width, m.Key, m.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
