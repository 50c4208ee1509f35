package cpu

import (
	"fmt"
	"math"

	"github.com/flint-ml/flint/internal/tensor"
)

// reduceOutShape computes the shape left after reducing dim, and the
// normalized dimension index.
func reduceOutShape(op string, shape tensor.Shape, dim int, keepDim bool) (tensor.Shape, int) {
	ndim := len(shape)
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD tensor", op, dim, ndim))
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, ndim-1)
		for i := 0; i < ndim; i++ {
			if i != dim {
				outShape = append(outShape, shape[i])
			}
		}
	}
	return outShape, dim
}

// SumDim sums tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	y := backend.SumDim(x, -1, true)   // [2, 3, 4] -> [2, 3, 1]
//	z := backend.SumDim(x, -1, false)  // [2, 3, 4] -> [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	outShape, dim := reduceOutShape("sumdim", x.Shape(), dim, keepDim)

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		sumDimKernel(x.AsFloat32(), result.AsFloat32(), x.Shape(), dim)
	case tensor.Float64:
		sumDimKernel(x.AsFloat64(), result.AsFloat64(), x.Shape(), dim)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// MeanDim computes the mean of tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	sumResult := cpu.SumDim(x, dim, keepDim)

	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim = ndim + dim
	}
	divisor := float64(shape[dim])

	switch sumResult.DType() {
	case tensor.Float32:
		data := sumResult.AsFloat32()
		divisorF32 := float32(divisor)
		for i := range data {
			data[i] /= divisorF32
		}
	case tensor.Float64:
		data := sumResult.AsFloat64()
		for i := range data {
			data[i] /= divisor
		}
	default:
		panic(fmt.Sprintf("meandim: unsupported dtype %s (only float32/float64 supported)", sumResult.DType()))
	}

	return sumResult
}

// sumDimKernel performs dimension reduction by accumulating every input
// element into its output slot.
func sumDimKernel[T ~float32 | ~float64](data, result []T, shape tensor.Shape, dim int) {
	for i := range result {
		result[i] = 0
	}

	strides := shape.ComputeStrides()
	numElements := shape.NumElements()

	// Output strides with the reduced dimension collapsed to size 1.
	outShape := shape.Clone()
	outShape[dim] = 1
	outStrides := outShape.ComputeStrides()

	for i := 0; i < numElements; i++ {
		outIdx := 0
		temp := i
		for d := 0; d < len(shape); d++ {
			coord := temp / strides[d]
			temp %= strides[d]
			if d != dim {
				outIdx += coord * outStrides[d]
			}
		}
		result[outIdx] += data[i]
	}
}

// LogSumExp computes log(sum(exp(x))) along the specified dimension.
//
// The max of each reduction group is subtracted before exponentiating, so
// the result stays finite even when the inputs are far outside the range
// where exp would overflow.
func (cpu *CPUBackend) LogSumExp(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	outShape, dim := reduceOutShape("logsumexp", x.Shape(), dim, keepDim)

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("logsumexp: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		logSumExpKernel(x.AsFloat32(), result.AsFloat32(), x.Shape(), dim)
	case tensor.Float64:
		logSumExpKernel(x.AsFloat64(), result.AsFloat64(), x.Shape(), dim)
	default:
		panic(fmt.Sprintf("logsumexp: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// logSumExpKernel reduces each group along dim as max + log(sum(exp(v - max))).
func logSumExpKernel[T ~float32 | ~float64](data, result []T, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	numGroups := 1
	for i := range shape {
		if i != dim {
			numGroups *= shape[i]
		}
	}

	resultIdx := 0
	for group := 0; group < numGroups; group++ {
		// Base flat index of this reduction group.
		baseIdx := 0
		remaining := group
		for i := len(shape) - 1; i >= 0; i-- {
			if i == dim {
				continue
			}
			coord := remaining % shape[i]
			remaining /= shape[i]
			baseIdx += coord * strides[i]
		}

		maxVal := data[baseIdx]
		for i := 1; i < dimSize; i++ {
			if v := data[baseIdx+i*dimStride]; v > maxVal {
				maxVal = v
			}
		}

		var sumExp float64
		for i := 0; i < dimSize; i++ {
			sumExp += math.Exp(float64(data[baseIdx+i*dimStride] - maxVal))
		}

		result[resultIdx] = maxVal + T(math.Log(sumExp))
		resultIdx++
	}
}

// Sum computes the total sum of all elements in the tensor (scalar result).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = sumSlice(x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = sumSlice(x.AsFloat64())
	case tensor.Int32:
		result.AsInt32()[0] = sumSlice(x.AsInt32())
	case tensor.Int64:
		result.AsInt64()[0] = sumSlice(x.AsInt64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// Mean computes the mean of all elements in the tensor (scalar result).
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.Sum(x)
	n := x.NumElements()

	switch result.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] /= float32(n)
	case tensor.Float64:
		result.AsFloat64()[0] /= float64(n)
	default:
		panic(fmt.Sprintf("mean: unsupported dtype %s (only float32/float64 supported)", result.DType()))
	}

	return result
}

func sumSlice[T number](src []T) T {
	var sum T
	for _, v := range src {
		sum += v
	}
	return sum
}
