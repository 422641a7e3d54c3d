// Package stats provides running counters for evaluation metrics.
//
// All counters share the same lifecycle: Feed is called any number of times,
// the summary accessors may be read at any point, and Reset returns the
// counter to its initial state for the next epoch. Counters are not safe for
// concurrent use; the validation driver serializes access.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// StatCounter accumulates scalar values and reports simple statistics.
type StatCounter struct {
	values []float64
}

// Feed appends a value to the counter.
func (c *StatCounter) Feed(v float64) {
	c.values = append(c.values, v)
}

// Count returns the number of values fed so far.
func (c *StatCounter) Count() int {
	return len(c.values)
}

// Average returns the arithmetic mean of all fed values, or 0 when empty.
func (c *StatCounter) Average() float64 {
	if len(c.values) == 0 {
		return 0
	}
	return stat.Mean(c.values, nil)
}

// Sum returns the sum of all fed values.
func (c *StatCounter) Sum() float64 {
	return floats.Sum(c.values)
}

// Max returns the largest fed value, or 0 when empty.
func (c *StatCounter) Max() float64 {
	if len(c.values) == 0 {
		return 0
	}
	return floats.Max(c.values)
}

// Min returns the smallest fed value, or 0 when empty.
func (c *StatCounter) Min() float64 {
	if len(c.values) == 0 {
		return 0
	}
	return floats.Min(c.values)
}

// Reset discards all fed values.
func (c *StatCounter) Reset() {
	c.values = c.values[:0]
}

// RatioCounter accumulates a numerator/denominator pair, yielding the exact
// weighted ratio across all Feed calls. Feeding per-batch counts with true
// batch sizes produces dataset-exact rates even when batches are unequal.
type RatioCounter struct {
	numerator   float64
	denominator float64
}

// Feed adds count occurrences out of total trials.
func (c *RatioCounter) Feed(count, total float64) {
	c.numerator += count
	c.denominator += total
}

// Ratio returns numerator/denominator, or 0 when nothing has been fed.
func (c *RatioCounter) Ratio() float64 {
	if c.denominator == 0 {
		return 0
	}
	return c.numerator / c.denominator
}

// Count returns the accumulated numerator.
func (c *RatioCounter) Count() float64 {
	return c.numerator
}

// Total returns the accumulated denominator.
func (c *RatioCounter) Total() float64 {
	return c.denominator
}

// Reset zeroes both sides of the ratio.
func (c *RatioCounter) Reset() {
	c.numerator = 0
	c.denominator = 0
}

// Accuracy is a RatioCounter fed with (correct, total) pairs.
type Accuracy struct {
	RatioCounter
}

// Accuracy returns the running fraction of correct samples.
func (a *Accuracy) Accuracy() float64 {
	return a.Ratio()
}
