package inference

import (
	"fmt"

	"github.com/kiln-ml/kiln/internal/names"
	"github.com/kiln-ml/kiln/internal/stats"
	"github.com/kiln-ml/kiln/internal/tensor"
)

// DefaultBinaryPrefix is the summary-key prefix BinaryClassificationStats
// uses unless overridden with NewBinaryClassificationStatsWithPrefix.
const DefaultBinaryPrefix = "val"

// BinaryClassificationStats computes precision and recall for binary
// classification from paired 0/1 prediction and label vectors.
type BinaryClassificationStats struct {
	predFetch  string
	labelFetch string
	prefix     string
	stat       stats.BinaryStatistics
}

// NewBinaryClassificationStats creates an accumulator reading the given
// prediction and label tensors with the default summary prefix.
func NewBinaryClassificationStats(predTensorName, labelTensorName string) (*BinaryClassificationStats, error) {
	return NewBinaryClassificationStatsWithPrefix(DefaultBinaryPrefix, predTensorName, labelTensorName)
}

// NewBinaryClassificationStatsWithPrefix creates an accumulator logging
// under "{prefix}_precision" and "{prefix}_recall". An empty prefix yields
// the bare metric names.
func NewBinaryClassificationStatsWithPrefix(prefix, predTensorName, labelTensorName string) (*BinaryClassificationStats, error) {
	_, predFetch, err := names.Parse(predTensorName)
	if err != nil {
		return nil, fmt.Errorf("binary classification stats: %w", err)
	}
	_, labelFetch, err := names.Parse(labelTensorName)
	if err != nil {
		return nil, fmt.Errorf("binary classification stats: %w", err)
	}
	return &BinaryClassificationStats{
		predFetch:  predFetch,
		labelFetch: labelFetch,
		prefix:     prefix,
	}, nil
}

// Fetches returns the prediction and label tensor names, in that order.
func (b *BinaryClassificationStats) Fetches() []string {
	return []string{b.predFetch, b.labelFetch}
}

// BeforeEpoch resets all confusion counts.
func (b *BinaryClassificationStats) BeforeEpoch() {
	b.stat.Reset()
}

// OnFetches accumulates one batch of paired prediction/label vectors.
func (b *BinaryClassificationStats) OnFetches(results []*tensor.RawTensor) error {
	if len(results) != 2 {
		return fmt.Errorf("binary classification stats: got %d results, want 2", len(results))
	}
	pred := results[0].Float64Values()
	label := results[1].Float64Values()
	if err := b.stat.Feed(pred, label); err != nil {
		return fmt.Errorf("binary classification stats: %w", err)
	}
	return nil
}

// AfterEpoch reports precision and recall from the accumulated counts.
func (b *BinaryClassificationStats) AfterEpoch() map[string]float64 {
	precisionKey, recallKey := "precision", "recall"
	if b.prefix != "" {
		precisionKey = b.prefix + "_" + precisionKey
		recallKey = b.prefix + "_" + recallKey
	}
	return map[string]float64{
		precisionKey: b.stat.Precision(),
		recallKey:    b.stat.Recall(),
	}
}
