package inference

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/kiln-ml/kiln/internal/names"
	"github.com/kiln-ml/kiln/internal/stats"
	"github.com/kiln-ml/kiln/internal/tensor"
)

// Defaults for ClassificationError, matching the conventional tensor and
// summary names used by classification models.
const (
	DefaultWrongTensorName  = "incorrect_vector"
	DefaultErrorSummaryName = "validation_error"
)

// ClassificationError computes the true dataset-level classification error
// from a per-sample "wrong" vector (1 = misclassified).
//
// Each batch contributes its wrong count weighted by its actual sample
// count, so the result stays exact when the final batch is smaller than the
// rest. Feeding a "correct prediction" vector instead yields classification
// accuracy.
type ClassificationError struct {
	fetch       string
	summaryName string
	errStat     stats.RatioCounter
}

// NewClassificationError creates a ClassificationError reading the given
// 0/1 "wrong" vector tensor and logging under summaryName. Empty arguments
// select DefaultWrongTensorName and DefaultErrorSummaryName.
func NewClassificationError(wrongTensorName, summaryName string) (*ClassificationError, error) {
	if wrongTensorName == "" {
		wrongTensorName = DefaultWrongTensorName
	}
	if summaryName == "" {
		summaryName = DefaultErrorSummaryName
	}

	_, tensorName, err := names.Parse(wrongTensorName)
	if err != nil {
		return nil, fmt.Errorf("classification error: %w", err)
	}
	return &ClassificationError{
		fetch:       tensorName,
		summaryName: summaryName,
	}, nil
}

// Fetches returns the wrong-vector tensor name.
func (c *ClassificationError) Fetches() []string {
	return []string{c.fetch}
}

// BeforeEpoch resets the running ratio.
func (c *ClassificationError) BeforeEpoch() {
	c.errStat.Reset()
}

// OnFetches accumulates one batch's wrong count, weighted by the batch's
// true sample count. The fetched tensor must be one dimensional; anything
// else indicates a bug in graph construction and fails fast.
func (c *ClassificationError) OnFetches(results []*tensor.RawTensor) error {
	if len(results) != 1 {
		return fmt.Errorf("classification error: got %d results, want 1", len(results))
	}
	vec := results[0]
	if vec.Shape().Rank() != 1 {
		return fmt.Errorf("classification error: %s is not a vector (shape %v)",
			c.fetch, vec.Shape())
	}

	v := vec.Float64Values()
	c.errStat.Feed(floats.Sum(v), float64(len(v)))
	return nil
}

// AfterEpoch reports the running error ratio.
func (c *ClassificationError) AfterEpoch() map[string]float64 {
	return map[string]float64{c.summaryName: c.errStat.Ratio()}
}
