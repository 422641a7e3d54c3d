package inference

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/kiln-ml/kiln/internal/names"
	"github.com/kiln-ml/kiln/internal/tensor"
)

// DefaultScalarPrefix is the summary-key prefix ScalarStats uses unless
// overridden with WithPrefix.
const DefaultScalarPrefix = "validation"

// ScalarStats averages one or more named scalar tensors over all batches of
// an epoch.
//
// The mean is taken per batch, unweighted by batch size: it is exact when
// all batches carry the same number of samples and approximate otherwise.
// For a dataset-exact error rate under unequal batch sizes, use
// ClassificationError instead.
type ScalarStats struct {
	fetches []string // fully qualified tensor names
	keys    []string // summary keys, prefix applied
	batches [][]float64
}

// NewScalarStats creates a ScalarStats tracking the given scalar tensor
// names with the default summary prefix.
func NewScalarStats(nameList ...string) (*ScalarStats, error) {
	return NewScalarStatsWithPrefix(DefaultScalarPrefix, nameList...)
}

// NewScalarStatsWithPrefix creates a ScalarStats with summary keys
// "{prefix}_{opname}". An empty prefix yields the bare op name.
func NewScalarStatsWithPrefix(prefix string, nameList ...string) (*ScalarStats, error) {
	if len(nameList) == 0 {
		return nil, fmt.Errorf("scalar stats needs at least one tensor name")
	}

	s := &ScalarStats{
		fetches: make([]string, 0, len(nameList)),
		keys:    make([]string, 0, len(nameList)),
	}
	for _, n := range nameList {
		op, tensorName, err := names.Parse(n)
		if err != nil {
			return nil, fmt.Errorf("scalar stats: %w", err)
		}
		key := op
		if prefix != "" {
			key = prefix + "_" + op
		}
		s.fetches = append(s.fetches, tensorName)
		s.keys = append(s.keys, key)
	}
	return s, nil
}

// Fetches returns the tracked tensor names.
func (s *ScalarStats) Fetches() []string {
	return s.fetches
}

// BeforeEpoch discards all buffered batches.
func (s *ScalarStats) BeforeEpoch() {
	s.batches = s.batches[:0]
}

// OnFetches buffers one batch's scalar values verbatim.
func (s *ScalarStats) OnFetches(results []*tensor.RawTensor) error {
	if len(results) != len(s.fetches) {
		return fmt.Errorf("scalar stats: got %d results, want %d", len(results), len(s.fetches))
	}
	row := make([]float64, len(results))
	for i, r := range results {
		if !r.IsScalar() {
			return fmt.Errorf("scalar stats: %s is not a scalar (shape %v)",
				s.fetches[i], r.Shape())
		}
		row[i] = r.Float64Values()[0]
	}
	s.batches = append(s.batches, row)
	return nil
}

// AfterEpoch returns the per-name mean over all buffered batches, or nil
// when no batches were seen.
func (s *ScalarStats) AfterEpoch() map[string]float64 {
	if len(s.batches) == 0 {
		return nil
	}

	ret := make(map[string]float64, len(s.keys))
	column := make([]float64, len(s.batches))
	for i, key := range s.keys {
		for j, row := range s.batches {
			column[j] = row[i]
		}
		ret[key] = stat.Mean(column, nil)
	}
	return ret
}
