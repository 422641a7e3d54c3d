// Copyright 2026 Kiln ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package inference provides the public API for Kiln's validation metrics.
//
// An Inferencer accumulates one metric across the batches of a validation
// epoch; the Runner drives a set of them against a batch source and forwards
// their epoch summaries to a monitor sink.
//
// Example:
//
//	scalars, _ := inference.NewScalarStats("loss", "accuracy")
//	errRate, _ := inference.NewClassificationError("", "")
//	hist := inference.NewHistory()
//
//	runner, _ := inference.NewRunner(hist, scalars, errRate)
//	_ = runner.RunEpoch(ctx, source, epoch)
package inference

import (
	"github.com/kiln-ml/kiln/internal/inference"
	"github.com/kiln-ml/kiln/internal/monitor"
)

// Inferencer is the contract between a metric accumulator and the
// validation driver.
type Inferencer = inference.Inferencer

// Summarizer is implemented by inferencers that report epoch-end scalars.
type Summarizer = inference.Summarizer

// Batch maps tensor names to the values fetched for one evaluation batch.
type Batch = inference.Batch

// BatchSource yields evaluation batches, ending an epoch with io.EOF.
type BatchSource = inference.BatchSource

// Runner drives inferencers through validation epochs.
type Runner = inference.Runner

// SliceSource is an in-memory BatchSource.
type SliceSource = inference.SliceSource

// ScalarStats averages named scalar tensors over an epoch.
type ScalarStats = inference.ScalarStats

// ClassificationError computes the dataset-exact classification error.
type ClassificationError = inference.ClassificationError

// BinaryClassificationStats computes binary precision and recall.
type BinaryClassificationStats = inference.BinaryClassificationStats

// Monitor receives named scalar metrics.
type Monitor = monitor.Monitor

// History is an in-memory monitor keeping every value per metric name.
type History = monitor.History

// Monitors fans scalars out to several monitors.
type Monitors = monitor.Monitors

// NewRunner creates a Runner forwarding summaries to mon.
func NewRunner(mon Monitor, inferencers ...Inferencer) (*Runner, error) {
	return inference.NewRunner(mon, inferencers...)
}

// NewSliceSource creates a SliceSource over the given batches.
func NewSliceSource(batches ...Batch) *SliceSource {
	return inference.NewSliceSource(batches...)
}

// NewScalarStats creates a ScalarStats with the default summary prefix.
func NewScalarStats(names ...string) (*ScalarStats, error) {
	return inference.NewScalarStats(names...)
}

// NewScalarStatsWithPrefix creates a ScalarStats with summary keys
// "{prefix}_{opname}".
func NewScalarStatsWithPrefix(prefix string, names ...string) (*ScalarStats, error) {
	return inference.NewScalarStatsWithPrefix(prefix, names...)
}

// NewClassificationError creates a ClassificationError. Empty arguments
// select the conventional tensor and summary names.
func NewClassificationError(wrongTensorName, summaryName string) (*ClassificationError, error) {
	return inference.NewClassificationError(wrongTensorName, summaryName)
}

// NewBinaryClassificationStats creates a precision/recall accumulator over
// paired 0/1 prediction and label tensors, with the default summary prefix.
func NewBinaryClassificationStats(predTensorName, labelTensorName string) (*BinaryClassificationStats, error) {
	return inference.NewBinaryClassificationStats(predTensorName, labelTensorName)
}

// NewBinaryClassificationStatsWithPrefix creates a precision/recall
// accumulator logging under "{prefix}_precision" and "{prefix}_recall".
func NewBinaryClassificationStatsWithPrefix(prefix, predTensorName, labelTensorName string) (*BinaryClassificationStats, error) {
	return inference.NewBinaryClassificationStatsWithPrefix(prefix, predTensorName, labelTensorName)
}

// NewHistory creates an empty History monitor.
func NewHistory() *History {
	return monitor.NewHistory()
}
