// Package monitor provides sinks for scalar evaluation metrics.
//
// A validation pass emits a small set of named scalars once per epoch.
// Monitor implementations record them: in memory for inspection, to the
// process log, to a JSON stats file, or to a Prometheus registry. Monitors
// compose through the fan-out type.
package monitor

import "log"

// Monitor receives named scalar metrics.
type Monitor interface {
	// PutScalar records one metric value.
	PutScalar(name string, value float64)
}

// EpochFlusher is implemented by monitors that batch scalars per epoch and
// need to be told when an epoch's metrics are complete.
type EpochFlusher interface {
	FlushEpoch(epoch int) error
}

// History is an in-memory monitor keeping every value per metric name.
type History struct {
	series map[string][]float64
}

// NewHistory creates an empty History monitor.
func NewHistory() *History {
	return &History{series: make(map[string][]float64)}
}

// PutScalar appends the value to the metric's series.
func (h *History) PutScalar(name string, value float64) {
	h.series[name] = append(h.series[name], value)
}

// Latest returns the most recent value for a metric name.
func (h *History) Latest(name string) (float64, bool) {
	s := h.series[name]
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Series returns all recorded values for a metric name.
func (h *History) Series(name string) []float64 {
	return h.series[name]
}

// Names returns the metric names seen so far.
func (h *History) Names() []string {
	names := make([]string, 0, len(h.series))
	for name := range h.series {
		names = append(names, name)
	}
	return names
}

// Logger writes each scalar to the process log.
type Logger struct{}

// PutScalar logs the metric.
func (Logger) PutScalar(name string, value float64) {
	log.Printf("%s=%.6g", name, value)
}

// Monitors fans scalars out to several monitors.
type Monitors []Monitor

// PutScalar forwards the metric to every monitor.
func (m Monitors) PutScalar(name string, value float64) {
	for _, mon := range m {
		mon.PutScalar(name, value)
	}
}

// FlushEpoch notifies every epoch-aware monitor. The first error is
// returned after all monitors have been flushed.
func (m Monitors) FlushEpoch(epoch int) error {
	var firstErr error
	for _, mon := range m {
		if f, ok := mon.(EpochFlusher); ok {
			if err := f.FlushEpoch(epoch); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
