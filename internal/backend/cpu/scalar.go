package cpu

import (
	"fmt"

	"github.com/flint-ml/flint/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.

func (cpu *CPUBackend) scalarOp(op string, x *tensor.RawTensor, scalar any,
	f32 func(float32, float32) float32,
	f64 func(float64, float64) float64,
	i32 func(int32, int32) int32,
	i64 func(int64, int64) int64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		scalarKernel(result.AsFloat32(), x.AsFloat32(), scalar.(float32), f32)
	case tensor.Float64:
		scalarKernel(result.AsFloat64(), x.AsFloat64(), scalar.(float64), f64)
	case tensor.Int32:
		scalarKernel(result.AsInt32(), x.AsInt32(), scalar.(int32), i32)
	case tensor.Int64:
		scalarKernel(result.AsInt64(), x.AsInt64(), scalar.(int64), i64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}

	return result
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, scalar, add, add, add, add)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", x, scalar, sub, sub, sub, sub)
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, scalar, mul, mul, mul, mul)
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", x, scalar, div, div, div, div)
}
