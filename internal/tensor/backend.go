package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The op set is the collaborator contract the loss layer needs: elementwise
// arithmetic with NumPy-style broadcasting, scalar variants, pointwise math,
// axis reductions (including a numerically stable LogSumExp), and
// gather-along-axis with an int32 index tensor.
type Backend interface {
	// Element-wise binary operations (with broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor    // exponential
	Log(x *RawTensor) *RawTensor    // natural logarithm; log(0) = -Inf, log(x<0) = NaN
	Abs(x *RawTensor) *RawTensor    // absolute value
	Square(x *RawTensor) *RawTensor // x * x

	// Comparison operations (element-wise, return bool tensor, with broadcasting)
	Lower(a, b *RawTensor) *RawTensor // a < b

	// Reduction operations
	Sum(x *RawTensor) *RawTensor                                   // total sum (scalar result)
	Mean(x *RawTensor) *RawTensor                                  // total mean (scalar result)
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor         // sum along dimension
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor        // mean along dimension
	LogSumExp(x *RawTensor, dim int, keepDim bool) *RawTensor      // log(sum(exp(x))) along dimension, overflow-safe

	// Manipulation operations
	Unsqueeze(x *RawTensor, dim int) *RawTensor // add dimension of size 1
	Squeeze(x *RawTensor, dim int) *RawTensor   // remove dimension of size 1

	// Indexing operations
	Gather(x *RawTensor, dim int, index *RawTensor) *RawTensor // select elements along dim using index tensor
	Where(condition, x, y *RawTensor) *RawTensor               // conditional element selection

	// Metadata
	Name() string
	Device() Device
}
