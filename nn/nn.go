// Copyright 2025 Flint ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network loss functions for Flint ML.
//
// All loss functions operate elementwise on tensors and accept a reduction
// mode that controls whether the per-element losses are returned as-is,
// averaged, or summed.
//
// Example:
//
//	backend := cpu.New()
//	preds, _ := tensor.FromSlice([]float32{0.5, 0.7, 0.3}, tensor.Shape{3}, backend)
//	targets, _ := tensor.FromSlice([]float32{1, 0, 1}, tensor.Shape{3}, backend)
//	loss, err := nn.BinaryCrossEntropy(preds, targets, nn.ReductionMean)
package nn

import (
	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/tensor"
)

// Reduction specifies how a loss is reduced over its elements.
type Reduction = nn.Reduction

// Reduction modes.
const (
	ReductionNone Reduction = nn.ReductionNone
	ReductionMean Reduction = nn.ReductionMean
	ReductionSum  Reduction = nn.ReductionSum
)

// Reduce applies a reduction mode to a loss tensor.
func Reduce[T tensor.DType, B tensor.Backend](loss *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	return nn.Reduce(loss, reduction)
}

// CrossEntropy computes the cross entropy loss between logits and integer
// class targets, with optional per-element weights and label smoothing.
func CrossEntropy[B tensor.Backend](
	logits *tensor.Tensor[float32, B],
	targets *tensor.Tensor[int32, B],
	weights *tensor.Tensor[float32, B],
	axis int,
	labelSmoothing float32,
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	return nn.CrossEntropy(logits, targets, weights, axis, labelSmoothing, reduction)
}

// BinaryCrossEntropy computes the binary cross entropy loss between
// probabilities and binary targets. Inputs are not clamped.
func BinaryCrossEntropy[B tensor.Backend](
	inputs, targets *tensor.Tensor[float32, B],
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	return nn.BinaryCrossEntropy(inputs, targets, reduction)
}

// BCELoss is a stateful binary cross entropy loss module.
type BCELoss[B tensor.Backend] = nn.BCELoss[B]

// NewBCELoss creates a BCELoss with the given reduction mode.
func NewBCELoss[B tensor.Backend](reduction Reduction) *BCELoss[B] {
	return nn.NewBCELoss[B](reduction)
}

// L1Loss computes the mean absolute error between predictions and targets.
func L1Loss[B tensor.Backend](
	predictions, targets *tensor.Tensor[float32, B],
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	return nn.L1Loss(predictions, targets, reduction)
}

// MSELoss computes the mean squared error between predictions and targets.
func MSELoss[B tensor.Backend](
	predictions, targets *tensor.Tensor[float32, B],
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	return nn.MSELoss(predictions, targets, reduction)
}

// NLLLoss computes the negative log likelihood loss from log probabilities
// and integer class targets.
func NLLLoss[B tensor.Backend](
	inputs *tensor.Tensor[float32, B],
	targets *tensor.Tensor[int32, B],
	axis int,
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	return nn.NLLLoss(inputs, targets, axis, reduction)
}

// KLDivLoss computes the Kullback-Leibler divergence from log probabilities.
// Both inputs and targets are expected in log space.
func KLDivLoss[B tensor.Backend](
	inputs, targets *tensor.Tensor[float32, B],
	axis int,
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	return nn.KLDivLoss(inputs, targets, axis, reduction)
}

// SmoothL1Loss computes the smooth L1 loss, quadratic for small differences
// and linear for large ones.
func SmoothL1Loss[B tensor.Backend](
	predictions, targets *tensor.Tensor[float32, B],
	beta float32,
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	return nn.SmoothL1Loss(predictions, targets, beta, reduction)
}
