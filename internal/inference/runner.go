package inference

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/kiln-ml/kiln/internal/monitor"
	"github.com/kiln-ml/kiln/internal/tensor"
)

// A Batch maps tensor names to the values fetched for one evaluation batch.
type Batch map[string]*tensor.RawTensor

// BatchSource yields evaluation batches. NextBatch returns io.EOF when the
// epoch's data is exhausted.
type BatchSource interface {
	NextBatch(ctx context.Context) (Batch, error)
}

// Runner drives a set of inferencers through validation epochs: it resets
// them, feeds every batch from a source, and forwards epoch summaries to a
// monitor. Access to the inferencers is serialized; a Runner must not be
// shared across goroutines.
type Runner struct {
	inferencers []Inferencer
	monitor     monitor.Monitor
}

// NewRunner creates a Runner forwarding summaries to mon.
func NewRunner(mon monitor.Monitor, inferencers ...Inferencer) (*Runner, error) {
	if mon == nil {
		return nil, fmt.Errorf("runner needs a monitor")
	}
	if len(inferencers) == 0 {
		return nil, fmt.Errorf("runner needs at least one inferencer")
	}
	for _, inf := range inferencers {
		if len(inf.Fetches()) == 0 {
			return nil, fmt.Errorf("%T declares no fetches", inf)
		}
	}
	return &Runner{inferencers: inferencers, monitor: mon}, nil
}

// RunEpoch runs one full validation epoch: reset, consume every batch from
// src until io.EOF, then summarize. An inferencer failing on a batch aborts
// the epoch; that is a caller bug, not a recoverable condition. Non-finite
// summary values are dropped with a warning instead of being forwarded.
func (r *Runner) RunEpoch(ctx context.Context, src BatchSource, epoch int) error {
	for _, inf := range r.inferencers {
		inf.BeforeEpoch()
	}

	for {
		batch, err := src.NextBatch(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("epoch %d: next batch: %w", epoch, err)
		}
		if err := r.dispatch(batch); err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
	}

	for _, inf := range r.inferencers {
		s, ok := inf.(Summarizer)
		if !ok {
			continue
		}
		for name, value := range s.AfterEpoch() {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				log.Printf("warning: %T returned a non-finite value for %s, dropping", inf, name)
				continue
			}
			r.monitor.PutScalar(name, value)
		}
	}

	if f, ok := r.monitor.(monitor.EpochFlusher); ok {
		if err := f.FlushEpoch(epoch); err != nil {
			return fmt.Errorf("epoch %d: flush monitor: %w", epoch, err)
		}
	}
	return nil
}

// dispatch hands each inferencer its slice of the batch, ordered to match
// its declared fetches.
func (r *Runner) dispatch(batch Batch) error {
	for _, inf := range r.inferencers {
		fetches := inf.Fetches()
		results := make([]*tensor.RawTensor, len(fetches))
		for i, name := range fetches {
			v, ok := batch[name]
			if !ok {
				return fmt.Errorf("batch is missing tensor %q needed by %T", name, inf)
			}
			results[i] = v
		}
		if err := inf.OnFetches(results); err != nil {
			return err
		}
	}
	return nil
}

// SliceSource is an in-memory BatchSource, mainly for tests and offline
// evaluation of pre-fetched batches. Reset rewinds it for the next epoch.
type SliceSource struct {
	batches []Batch
	next    int
}

// NewSliceSource creates a SliceSource over the given batches.
func NewSliceSource(batches ...Batch) *SliceSource {
	return &SliceSource{batches: batches}
}

// NextBatch returns the next batch, or io.EOF when exhausted.
func (s *SliceSource) NextBatch(ctx context.Context) (Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.batches) {
		return nil, io.EOF
	}
	b := s.batches[s.next]
	s.next++
	return b, nil
}

// Reset rewinds the source to the first batch.
func (s *SliceSource) Reset() {
	s.next = 0
}
