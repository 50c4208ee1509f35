package nn

import (
	"github.com/pkg/errors"

	"github.com/flint-ml/flint/internal/tensor"
)

// Reduction selects the post-processing applied to an elementwise loss
// tensor.
type Reduction string

// Supported reduction modes.
const (
	// ReductionNone returns the elementwise loss tensor unchanged.
	ReductionNone Reduction = "none"
	// ReductionMean averages all loss elements to a scalar.
	ReductionMean Reduction = "mean"
	// ReductionSum totals all loss elements to a scalar.
	ReductionSum Reduction = "sum"
)

// Reduce applies the reduction mode to an elementwise loss tensor.
//
// ReductionNone returns the tensor unchanged; ReductionMean and ReductionSum
// collapse it to a scalar (shape []). Any other mode is an error.
func Reduce[T tensor.DType, B tensor.Backend](loss *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	switch reduction {
	case ReductionNone:
		return loss, nil
	case ReductionMean:
		return loss.Mean(), nil
	case ReductionSum:
		return loss.Sum(), nil
	default:
		return nil, errors.Errorf("invalid reduction %q: must be 'none', 'mean', or 'sum'", string(reduction))
	}
}
