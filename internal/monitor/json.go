package monitor

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// JSONWriter appends one JSON record per epoch to a stats file. Each record
// carries the run ID, epoch number, wall-clock time and the epoch's metrics,
// so several runs can share one file and remain distinguishable.
type JSONWriter struct {
	path    string
	runID   string
	pending map[string]float64

	now func() time.Time // overridable in tests
}

type jsonRecord struct {
	RunID   string             `json:"run_id"`
	Epoch   int                `json:"epoch"`
	Time    string             `json:"time"`
	Metrics map[string]float64 `json:"metrics"`
}

// NewJSONWriter creates a JSONWriter appending to the given path.
// A fresh run ID is assigned per writer.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{
		path:    path,
		runID:   uuid.NewString(),
		pending: make(map[string]float64),
		now:     time.Now,
	}
}

// RunID returns the writer's run identifier.
func (w *JSONWriter) RunID() string {
	return w.runID
}

// PutScalar buffers the metric until the epoch is flushed.
func (w *JSONWriter) PutScalar(name string, value float64) {
	w.pending[name] = value
}

// FlushEpoch appends the buffered metrics as one JSON line and clears the
// buffer. Epochs with no metrics write nothing.
func (w *JSONWriter) FlushEpoch(epoch int) error {
	if len(w.pending) == 0 {
		return nil
	}

	rec := jsonRecord{
		RunID:   w.runID,
		Epoch:   epoch,
		Time:    w.now().UTC().Format(time.RFC3339),
		Metrics: w.pending,
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal stats record: %w", err)
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open stats file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write stats record: %w", err)
	}

	w.pending = make(map[string]float64)
	return nil
}
