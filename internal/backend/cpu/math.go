package cpu

import (
	"fmt"
	"math"

	"github.com/flint-ml/flint/internal/tensor"
)

// floatOp applies a pointwise float function; only float32/float64 tensors
// are supported.
func (cpu *CPUBackend) floatOp(op string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		unaryKernel(result.AsFloat32(), x.AsFloat32(), func(v float32) float32 {
			return float32(f(float64(v)))
		})
	case tensor.Float64:
		unaryKernel(result.AsFloat64(), x.AsFloat64(), f)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.floatOp("exp", x, math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
//
// Non-positive inputs are not rejected: Log(0) yields -Inf and Log of a
// negative value yields NaN, per IEEE 754. Callers that need strictly
// positive inputs (e.g. probabilities) must enforce that themselves.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.floatOp("log", x, math.Log)
}

// Abs computes element-wise absolute value: |x|.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.floatOp("abs", x, math.Abs)
}

// Square computes element-wise square: x * x.
func (cpu *CPUBackend) Square(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.floatOp("square", x, func(v float64) float64 { return v * v })
}
