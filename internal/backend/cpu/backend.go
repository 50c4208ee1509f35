// Package cpu implements the pure-Go CPU backend for the Flint ML library.
package cpu

import (
	"fmt"

	"github.com/flint-ml/flint/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// binaryOut resolves the broadcasted output shape for a binary op and
// allocates the result tensor.
func (cpu *CPUBackend) binaryOut(op string, a, b *tensor.RawTensor) (*tensor.RawTensor, tensor.Shape, bool) {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	return result, outShape, needsBroadcast
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, outShape, needsBroadcast := cpu.binaryOut("add", a, b)

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, needsBroadcast, add)
	case tensor.Float64:
		binaryKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, needsBroadcast, add)
	case tensor.Int32:
		binaryKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, needsBroadcast, add)
	case tensor.Int64:
		binaryKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, needsBroadcast, add)
	default:
		panic(fmt.Sprintf("add: unsupported dtype %s", a.DType()))
	}

	return result
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, outShape, needsBroadcast := cpu.binaryOut("sub", a, b)

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, needsBroadcast, sub)
	case tensor.Float64:
		binaryKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, needsBroadcast, sub)
	case tensor.Int32:
		binaryKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, needsBroadcast, sub)
	case tensor.Int64:
		binaryKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, needsBroadcast, sub)
	default:
		panic(fmt.Sprintf("sub: unsupported dtype %s", a.DType()))
	}

	return result
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, outShape, needsBroadcast := cpu.binaryOut("mul", a, b)

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, needsBroadcast, mul)
	case tensor.Float64:
		binaryKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, needsBroadcast, mul)
	case tensor.Int32:
		binaryKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, needsBroadcast, mul)
	case tensor.Int64:
		binaryKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, needsBroadcast, mul)
	default:
		panic(fmt.Sprintf("mul: unsupported dtype %s", a.DType()))
	}

	return result
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, outShape, needsBroadcast := cpu.binaryOut("div", a, b)

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, needsBroadcast, div)
	case tensor.Float64:
		binaryKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, needsBroadcast, div)
	case tensor.Int32:
		binaryKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, needsBroadcast, div)
	case tensor.Int64:
		binaryKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, needsBroadcast, div)
	default:
		panic(fmt.Sprintf("div: unsupported dtype %s", a.DType()))
	}

	return result
}
