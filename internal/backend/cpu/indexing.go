package cpu

import (
	"fmt"

	"github.com/flint-ml/flint/internal/tensor"
)

// Gather selects elements along dim using an index tensor.
// Similar to torch.gather(input, dim, index).
//
// The index tensor must have dtype int32 and the same rank as the input;
// its shape must match the input shape everywhere except at the gather
// dimension.
//
// Example:
//
//	input: [3, 4, 5], index: [3, 4, 1] (int32), dim: 2
//	output: [3, 4, 1] where output[i,j,k] = input[i,j,index[i,j,k]]
func (cpu *CPUBackend) Gather(x *tensor.RawTensor, dim int, index *tensor.RawTensor) *tensor.RawTensor {
	if index.DType() != tensor.Int32 {
		panic(fmt.Sprintf("gather: index tensor must have dtype int32, got %s", index.DType()))
	}

	ndim := len(x.Shape())
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("gather: invalid dim %d for %dD tensor", dim, ndim))
	}

	indexShape := index.Shape()
	if len(indexShape) != ndim {
		panic(fmt.Sprintf("gather: index rank %d != input rank %d", len(indexShape), ndim))
	}
	for i := 0; i < ndim; i++ {
		if i != dim && indexShape[i] != x.Shape()[i] {
			panic(fmt.Sprintf("gather: index shape mismatch at dim %d: %d != %d",
				i, indexShape[i], x.Shape()[i]))
		}
	}

	result, err := tensor.NewRaw(indexShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("gather: failed to create result tensor: %v", err))
	}

	indices := index.AsInt32()
	switch x.DType() {
	case tensor.Float32:
		gatherKernel(result.AsFloat32(), x.AsFloat32(), indices, x.Shape(), indexShape, dim)
	case tensor.Float64:
		gatherKernel(result.AsFloat64(), x.AsFloat64(), indices, x.Shape(), indexShape, dim)
	case tensor.Int32:
		gatherKernel(result.AsInt32(), x.AsInt32(), indices, x.Shape(), indexShape, dim)
	case tensor.Int64:
		gatherKernel(result.AsInt64(), x.AsInt64(), indices, x.Shape(), indexShape, dim)
	default:
		panic(fmt.Sprintf("gather: unsupported dtype %s", x.DType()))
	}

	return result
}

func gatherKernel[T any](dst, src []T, indices []int32, srcShape, dstShape tensor.Shape, dim int) {
	ndim := len(srcShape)
	dstStrides := dstShape.ComputeStrides()
	srcStrides := srcShape.ComputeStrides()

	multiIdx := make([]int, ndim)
	for i := range dst {
		// Decompose flat destination index into coordinates.
		remaining := i
		for d := 0; d < ndim; d++ {
			multiIdx[d] = remaining / dstStrides[d]
			remaining %= dstStrides[d]
		}

		indexVal := int(indices[i])
		if indexVal < 0 || indexVal >= srcShape[dim] {
			panic(fmt.Sprintf("gather: index %d out of bounds [0, %d) at position %d",
				indexVal, srcShape[dim], i))
		}

		srcIdx := 0
		for d := 0; d < ndim; d++ {
			if d == dim {
				srcIdx += indexVal * srcStrides[d]
			} else {
				srcIdx += multiIdx[d] * srcStrides[d]
			}
		}

		dst[i] = src[srcIdx]
	}
}

// Where performs conditional element selection.
// Similar to torch.where(condition, x, y).
//
// Returns a tensor where each element is selected from x if the condition is
// true, otherwise from y. Condition, x, and y broadcast together.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", condition.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: dtype mismatch: %s vs %s", x.DType(), y.DType()))
	}

	xyShape, _, err := tensor.BroadcastShapes(x.Shape(), y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	outShape, _, err := tensor.BroadcastShapes(condition.Shape(), xyShape)
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	cond := condition.AsBool()
	switch x.DType() {
	case tensor.Float32:
		whereKernel(result.AsFloat32(), cond, x.AsFloat32(), y.AsFloat32(), condition.Shape(), x.Shape(), y.Shape(), outShape)
	case tensor.Float64:
		whereKernel(result.AsFloat64(), cond, x.AsFloat64(), y.AsFloat64(), condition.Shape(), x.Shape(), y.Shape(), outShape)
	case tensor.Int32:
		whereKernel(result.AsInt32(), cond, x.AsInt32(), y.AsInt32(), condition.Shape(), x.Shape(), y.Shape(), outShape)
	case tensor.Int64:
		whereKernel(result.AsInt64(), cond, x.AsInt64(), y.AsInt64(), condition.Shape(), x.Shape(), y.Shape(), outShape)
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}

	return result
}

func whereKernel[T any](dst []T, cond []bool, x, y []T, condShape, xShape, yShape, outShape tensor.Shape) {
	outStrides := outShape.ComputeStrides()
	condStrides := computeBroadcastStridesForShape(condShape, outShape)
	xStrides := computeBroadcastStridesForShape(xShape, outShape)
	yStrides := computeBroadcastStridesForShape(yShape, outShape)

	for i := range dst {
		if cond[computeFlatIndex(i, outStrides, condStrides)] {
			dst[i] = x[computeFlatIndex(i, outStrides, xStrides)]
		} else {
			dst[i] = y[computeFlatIndex(i, outStrides, yStrides)]
		}
	}
}
