package cpu

import (
	"github.com/flint-ml/flint/internal/tensor"
)

// number constrains kernel element types to the numeric dtypes.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64
}

func add[T number](a, b T) T { return a + b }
func sub[T number](a, b T) T { return a - b }
func mul[T number](a, b T) T { return a * b }
func div[T number](a, b T) T { return a / b }

// binaryKernel applies op element-wise, taking the vectorized fast path when
// both operands already have the output shape.
func binaryKernel[T number](dst, a, b []T, aShape, bShape, outShape tensor.Shape, needsBroadcast bool, op func(T, T) T) {
	if !needsBroadcast && aShape.Equal(bShape) {
		for i := range dst {
			dst[i] = op(a[i], b[i])
		}
		return
	}
	binaryBroadcast(dst, a, b, aShape, bShape, outShape, op)
}

// binaryBroadcast applies op element-wise over the broadcasted output shape,
// walking both inputs with broadcast-adjusted strides.
func binaryBroadcast[T number](dst, a, b []T, aShape, bShape, outShape tensor.Shape, op func(T, T) T) {
	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)

	for i := range dst {
		aIdx := computeFlatIndex(i, outStrides, aStrides)
		bIdx := computeFlatIndex(i, outStrides, bStrides)
		dst[i] = op(a[aIdx], b[bIdx])
	}
}

// scalarKernel applies op between each element and a fixed scalar.
func scalarKernel[T number](dst, src []T, scalar T, op func(T, T) T) {
	for i := range dst {
		dst[i] = op(src[i], scalar)
	}
}

// unaryKernel applies a pointwise function to every element.
func unaryKernel[T number](dst, src []T, f func(T) T) {
	for i := range dst {
		dst[i] = f(src[i])
	}
}

// compareKernel evaluates a comparison element-wise into a bool slice, with
// broadcasting support.
func compareKernel[T number](dst []bool, a, b []T, aShape, bShape, outShape tensor.Shape, needsBroadcast bool, cmp func(T, T) bool) {
	if !needsBroadcast && aShape.Equal(bShape) {
		for i := range dst {
			dst[i] = cmp(a[i], b[i])
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)

	for i := range dst {
		aIdx := computeFlatIndex(i, outStrides, aStrides)
		bIdx := computeFlatIndex(i, outStrides, bStrides)
		dst[i] = cmp(a[aIdx], b[bIdx])
	}
}

// computeBroadcastStridesForShape computes strides for broadcasting a shape
// to outShape. Dimensions of size 1 (and left-padded dimensions) get stride 0.
func computeBroadcastStridesForShape(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// computeFlatIndex maps a flat output index to the flat index in a source
// array described by broadcast-adjusted strides.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
