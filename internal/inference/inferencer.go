// Package inference implements per-metric accumulators driven once per
// evaluation batch and summarized once per validation epoch.
//
// An Inferencer declares the tensor names it needs fetched from the model,
// consumes one batch of fetched values at a time, and, if it also implements
// Summarizer, reports named scalars at the end of the epoch. The Runner
// drives the full lifecycle against a BatchSource and forwards summaries to
// a monitor sink.
//
// Inferencers are not safe for concurrent use: exactly one driver feeds an
// instance, one batch at a time, one epoch at a time.
package inference

import (
	"github.com/kiln-ml/kiln/internal/tensor"
)

// Inferencer is the contract between a metric accumulator and the
// validation driver.
type Inferencer interface {
	// Fetches returns the fully qualified tensor names this inferencer
	// needs fetched from the model for every evaluation batch.
	Fetches() []string

	// BeforeEpoch resets accumulation state. Called once per validation
	// epoch before the first batch.
	BeforeEpoch()

	// OnFetches consumes one batch's fetched values. The slice is ordered
	// to match Fetches and has the same length. It must not be called
	// before BeforeEpoch has reset state for the current epoch.
	OnFetches(results []*tensor.RawTensor) error
}

// Summarizer is implemented by inferencers that report epoch-end scalars.
// A nil or empty map means there is nothing to log.
type Summarizer interface {
	// AfterEpoch produces the epoch's summary metrics, keyed by metric
	// name. Called once per epoch after the last batch.
	AfterEpoch() map[string]float64
}
