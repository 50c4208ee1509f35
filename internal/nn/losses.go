// Package nn provides loss functions over the tensor abstraction.
//
// Every loss computes an elementwise loss tensor and then applies a
// Reduction as the final step. All functions are pure: inputs are never
// mutated and each call allocates fresh output tensors.
package nn

import (
	"github.com/pkg/errors"

	"github.com/flint-ml/flint/internal/tensor"
)

// CrossEntropy computes the cross entropy loss between raw logits and
// target class indices.
//
// targets holds integer class indices along every dimension of logits
// except axis; the logit of the target class is selected by gathering
// along axis. The log-partition term uses LogSumExp, so arbitrarily large
// logits do not overflow.
//
// With labelSmoothing = ε > 0, the one-hot target distribution is blended
// with a uniform distribution:
//
//	loss = logsumexp(logits) − (1−ε)·score − ε·mean(logits, axis)
//
// weights, when non-nil, must have exactly the shape of targets and scales
// the elementwise loss before reduction.
//
// Parameters:
//   - logits: unnormalized scores
//   - targets: target class indices
//   - weights: optional per-target weights (nil for none)
//   - axis: the class axis (negative counts from the end; -1 = last)
//   - labelSmoothing: smoothing factor in [0, 1)
//   - reduction: ReductionNone, ReductionMean, or ReductionSum
func CrossEntropy[B tensor.Backend](
	logits *tensor.Tensor[float32, B],
	targets *tensor.Tensor[int32, B],
	weights *tensor.Tensor[float32, B],
	axis int,
	labelSmoothing float32,
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	if labelSmoothing < 0 || labelSmoothing >= 1 {
		return nil, errors.Errorf("cross entropy: label smoothing must be in [0, 1), got %g", labelSmoothing)
	}
	if len(logits.Shape()) == 0 || len(targets.Shape()) == 0 {
		return nil, errors.Errorf("cross entropy: logits and targets must not be scalars, got shapes %v and %v",
			logits.Shape(), targets.Shape())
	}
	if logits.Shape()[0] != targets.Shape()[0] {
		return nil, errors.Errorf("cross entropy: shapes of logits %v and targets %v must match along axis 0",
			logits.Shape(), targets.Shape())
	}

	axis, err := logits.Shape().NormalizeDim(axis)
	if err != nil {
		return nil, errors.Wrap(err, "cross entropy")
	}

	// Logit of the target class per position.
	score := logits.Gather(axis, targets.Unsqueeze(axis)).Squeeze(axis)
	logSumExp := logits.LogSumExp(axis, false)

	var loss *tensor.Tensor[float32, B]
	if labelSmoothing > 0 {
		adjustedScore := score.MulScalar(1 - labelSmoothing)
		meanLogits := logits.MeanDim(axis, false)
		loss = logSumExp.Sub(adjustedScore).Sub(meanLogits.MulScalar(labelSmoothing))
	} else {
		loss = logSumExp.Sub(score)
	}

	if weights != nil {
		if !weights.Shape().Equal(targets.Shape()) {
			return nil, errors.Errorf("cross entropy: shape of weights %v must be the same as shape of targets %v",
				weights.Shape(), targets.Shape())
		}
		loss = loss.Mul(weights)
	}

	return Reduce(loss, reduction)
}

// BinaryCrossEntropy computes the binary cross entropy loss between
// predicted probabilities (post-sigmoid, strictly inside (0, 1)) and binary
// target labels broadcastable to the inputs:
//
//	loss = −targets·log(inputs) − (1−targets)·log(1−inputs)
//
// Inputs are NOT clamped: probabilities of exactly 0 or 1 produce ±Inf or
// NaN elements, which propagate into the reduced result. Keeping inputs
// strictly inside (0, 1) is the caller's responsibility.
func BinaryCrossEntropy[B tensor.Backend](
	inputs, targets *tensor.Tensor[float32, B],
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	oneMinusTargets := targets.MulScalar(-1).AddScalar(1)
	oneMinusInputs := inputs.MulScalar(-1).AddScalar(1)

	loss := targets.Mul(inputs.Log()).
		Add(oneMinusTargets.Mul(oneMinusInputs.Log())).
		MulScalar(-1)

	return Reduce(loss, reduction)
}

// BCELoss is a stateful wrapper around BinaryCrossEntropy carrying a fixed
// reduction mode.
//
// Example:
//
//	criterion := nn.NewBCELoss[Backend](nn.ReductionMean)
//	loss, err := criterion.Forward(probs, labels)
type BCELoss[B tensor.Backend] struct {
	reduction Reduction
}

// NewBCELoss creates a BCELoss with the given reduction mode.
func NewBCELoss[B tensor.Backend](reduction Reduction) *BCELoss[B] {
	return &BCELoss[B]{reduction: reduction}
}

// Reduction returns the stored reduction mode.
func (l *BCELoss[B]) Reduction() Reduction {
	return l.reduction
}

// Forward computes BinaryCrossEntropy with the stored reduction mode.
func (l *BCELoss[B]) Forward(inputs, targets *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	return BinaryCrossEntropy(inputs, targets, l.reduction)
}

// L1Loss computes the mean absolute error loss between predictions and
// targets:
//
//	loss = |predictions − targets|
//
// The shapes must match exactly; no broadcasting is performed.
func L1Loss[B tensor.Backend](
	predictions, targets *tensor.Tensor[float32, B],
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	if !predictions.Shape().Equal(targets.Shape()) {
		return nil, errors.Errorf("l1 loss: shape of predictions %v and targets %v must match",
			predictions.Shape(), targets.Shape())
	}

	loss := predictions.Sub(targets).Abs()

	return Reduce(loss, reduction)
}

// MSELoss computes the mean squared error loss between predictions and
// targets:
//
//	loss = (predictions − targets)²
//
// The shapes must match exactly; no broadcasting is performed.
func MSELoss[B tensor.Backend](
	predictions, targets *tensor.Tensor[float32, B],
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	if !predictions.Shape().Equal(targets.Shape()) {
		return nil, errors.Errorf("mse loss: shape of predictions %v and targets %v must match",
			predictions.Shape(), targets.Shape())
	}

	loss := predictions.Sub(targets).Square()

	return Reduce(loss, reduction)
}

// NLLLoss computes the negative log likelihood loss between
// log-probabilities and target class indices:
//
//	loss = −inputs[target]
//
// gathered along axis (which is then squeezed out of the result).
func NLLLoss[B tensor.Backend](
	inputs *tensor.Tensor[float32, B],
	targets *tensor.Tensor[int32, B],
	axis int,
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	normAxis, err := inputs.Shape().NormalizeDim(axis)
	if err != nil {
		return nil, errors.Wrap(err, "nll loss")
	}

	loss := inputs.Gather(normAxis, targets.Unsqueeze(normAxis)).Squeeze(normAxis).MulScalar(-1)

	return Reduce(loss, reduction)
}

// KLDivLoss computes the Kullback-Leibler divergence between two
// distributions given in log space:
//
//	loss = sum over axis of exp(targets) · (targets − inputs)
//
// Both inputs and targets hold log-probabilities over axis; evaluating in
// log space avoids exponentiating the inputs.
func KLDivLoss[B tensor.Backend](
	inputs, targets *tensor.Tensor[float32, B],
	axis int,
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	normAxis, err := inputs.Shape().NormalizeDim(axis)
	if err != nil {
		return nil, errors.Wrap(err, "kl div loss")
	}

	loss := targets.Exp().Mul(targets.Sub(inputs)).SumDim(normAxis, false)

	return Reduce(loss, reduction)
}

// SmoothL1Loss computes the smooth L1 loss between predictions and targets:
//
//	loss = 0.5·diff²/beta   where diff < beta
//	       |diff| − 0.5·beta otherwise
//
// Both branches and their first derivatives agree at |diff| = beta, so the
// loss is continuous and differentiable across the threshold.
//
// The branch predicate compares the SIGNED difference against beta, not its
// absolute value. A large negative diff therefore also takes the quadratic
// branch, which evaluates identically because diff² is symmetric in sign.
// Negative beta is unsupported and unchecked.
//
// The shapes must match exactly; no broadcasting is performed.
func SmoothL1Loss[B tensor.Backend](
	predictions, targets *tensor.Tensor[float32, B],
	beta float32,
	reduction Reduction,
) (*tensor.Tensor[float32, B], error) {
	if !predictions.Shape().Equal(targets.Shape()) {
		return nil, errors.Errorf("smooth l1 loss: shape of predictions %v and targets %v must match",
			predictions.Shape(), targets.Shape())
	}

	diff := predictions.Sub(targets)
	betaTensor := tensor.Full[float32](diff.Shape(), beta, diff.Backend())

	quadratic := diff.Square().MulScalar(0.5 / beta)
	linear := diff.Abs().SubScalar(0.5 * beta)
	loss := tensor.Where(diff.Lower(betaTensor), quadratic, linear)

	return Reduce(loss, reduction)
}
