package stats

import "fmt"

// BinaryStatistics accumulates confusion counts for binary classification
// from paired 0/1 prediction and label vectors.
type BinaryStatistics struct {
	truePos  int
	falsePos int
	trueNeg  int
	falseNeg int
}

// Feed accumulates one batch of paired predictions and labels.
// Both vectors must have the same length and contain only 0 or 1.
func (b *BinaryStatistics) Feed(pred, label []float64) error {
	if len(pred) != len(label) {
		return fmt.Errorf("prediction length %d does not match label length %d",
			len(pred), len(label))
	}
	for i := range pred {
		p, l := pred[i], label[i]
		if (p != 0 && p != 1) || (l != 0 && l != 1) {
			return fmt.Errorf("non-binary value at index %d: pred=%g label=%g", i, p, l)
		}
		switch {
		case p == 1 && l == 1:
			b.truePos++
		case p == 1 && l == 0:
			b.falsePos++
		case p == 0 && l == 1:
			b.falseNeg++
		default:
			b.trueNeg++
		}
	}
	return nil
}

// Precision returns TP/(TP+FP), or 0 when nothing was predicted positive.
func (b *BinaryStatistics) Precision() float64 {
	denom := b.truePos + b.falsePos
	if denom == 0 {
		return 0
	}
	return float64(b.truePos) / float64(denom)
}

// Recall returns TP/(TP+FN), or 0 when no positives exist.
func (b *BinaryStatistics) Recall() float64 {
	denom := b.truePos + b.falseNeg
	if denom == 0 {
		return 0
	}
	return float64(b.truePos) / float64(denom)
}

// Counts returns the accumulated (TP, FP, TN, FN) counts.
func (b *BinaryStatistics) Counts() (tp, fp, tn, fn int) {
	return b.truePos, b.falsePos, b.trueNeg, b.falseNeg
}

// Reset zeroes all accumulated counts.
func (b *BinaryStatistics) Reset() {
	*b = BinaryStatistics{}
}
