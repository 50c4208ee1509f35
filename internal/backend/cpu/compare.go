package cpu

import (
	"fmt"

	"github.com/flint-ml/flint/internal/tensor"
)

// Lower returns a < b element-wise as a bool tensor.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("lower: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("lower: %v", err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("lower: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		compareKernel(result.AsBool(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, needsBroadcast, lt)
	case tensor.Float64:
		compareKernel(result.AsBool(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, needsBroadcast, lt)
	case tensor.Int32:
		compareKernel(result.AsBool(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, needsBroadcast, lt)
	case tensor.Int64:
		compareKernel(result.AsBool(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, needsBroadcast, lt)
	default:
		panic(fmt.Sprintf("lower: unsupported dtype %s", a.DType()))
	}

	return result
}

func lt[T number](a, b T) bool { return a < b }
