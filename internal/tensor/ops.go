package tensor

// Typed wrappers over the Backend op set. Each wrapper forwards the raw
// tensors to the backend and re-wraps the result with the element type.

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Div(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// AddScalar adds a scalar value to each element of the tensor.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	result := t.backend.AddScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	result := t.backend.SubScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	result := t.backend.MulScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// DivScalar divides each element of the tensor by a scalar value.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	result := t.backend.DivScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// Exp computes the exponential (e^x) of each element.
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	result := t.backend.Exp(t.raw)
	return New[T, B](result, t.backend)
}

// Log computes the natural logarithm (ln(x)) of each element.
//
// Non-positive inputs follow IEEE semantics: Log(0) = -Inf and Log(x) for
// x < 0 is NaN. No clamping is performed.
func (t *Tensor[T, B]) Log() *Tensor[T, B] {
	result := t.backend.Log(t.raw)
	return New[T, B](result, t.backend)
}

// Abs computes the absolute value of each element.
func (t *Tensor[T, B]) Abs() *Tensor[T, B] {
	result := t.backend.Abs(t.raw)
	return New[T, B](result, t.backend)
}

// Square computes the square (x*x) of each element.
func (t *Tensor[T, B]) Square() *Tensor[T, B] {
	result := t.backend.Square(t.raw)
	return New[T, B](result, t.backend)
}

// Lower returns a boolean tensor where each element is true if the
// corresponding element in this tensor is less than the corresponding
// element in other.
//
// Supports broadcasting between tensors of different shapes.
//
// Example:
//
//	a := tensor.Arange[float32](0, 5, backend)
//	b := tensor.Full[float32](Shape{5}, 2.0, backend)
//	mask := a.Lower(b)  // [true, true, false, false, false]
func (t *Tensor[T, B]) Lower(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.Lower(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// Lt is a short alias for Lower.
func (t *Tensor[T, B]) Lt(other *Tensor[T, B]) *Tensor[bool, B] {
	return t.Lower(other)
}

// Sum computes the sum of all elements in the tensor.
//
// The result is a tensor with shape [] (scalar).
func (t *Tensor[T, B]) Sum() *Tensor[T, B] {
	result := t.backend.Sum(t.raw)
	return New[T, B](result, t.backend)
}

// Mean computes the mean of all elements in the tensor.
//
// The result is a tensor with shape [] (scalar).
func (t *Tensor[T, B]) Mean() *Tensor[T, B] {
	result := t.backend.Mean(t.raw)
	return New[T, B](result, t.backend)
}

// SumDim sums tensor elements along the specified dimension.
//
// Supports negative dimension indexing (-1 = last dimension).
//
// Example:
//
//	x := tensor.Ones[float32](Shape{2, 3, 4}, backend)
//	y := x.SumDim(-1, true)  // shape: [2, 3, 1]
//	z := x.SumDim(-1, false) // shape: [2, 3]
func (t *Tensor[T, B]) SumDim(dim int, keepDim bool) *Tensor[T, B] {
	result := t.backend.SumDim(t.raw, dim, keepDim)
	return New[T, B](result, t.backend)
}

// MeanDim computes the mean of tensor elements along the specified dimension.
//
// Supports negative dimension indexing (-1 = last dimension).
func (t *Tensor[T, B]) MeanDim(dim int, keepDim bool) *Tensor[T, B] {
	result := t.backend.MeanDim(t.raw, dim, keepDim)
	return New[T, B](result, t.backend)
}

// LogSumExp computes log(sum(exp(x))) along the specified dimension using
// the max-subtraction trick, so large inputs do not overflow.
//
// Supports negative dimension indexing (-1 = last dimension).
//
// Example:
//
//	logits := tensor.Full[float32](Shape{2, 10}, 1000, backend)
//	lse := logits.LogSumExp(-1, false) // finite, shape [2]
func (t *Tensor[T, B]) LogSumExp(dim int, keepDim bool) *Tensor[T, B] {
	result := t.backend.LogSumExp(t.raw, dim, keepDim)
	return New[T, B](result, t.backend)
}

// Unsqueeze adds a dimension of size 1 at the specified position.
//
// Supports negative dim indexing.
//
// Example:
//
//	x := tensor.Ones[float32](Shape{2, 3}, backend)
//	y := x.Unsqueeze(1)  // Shape: [2, 1, 3]
//	z := x.Unsqueeze(-1) // Shape: [2, 3, 1]
func (t *Tensor[T, B]) Unsqueeze(dim int) *Tensor[T, B] {
	result := t.backend.Unsqueeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Squeeze removes a dimension of size 1 at the specified position.
//
// Panics if the dimension size is not 1.
// Supports negative dim indexing.
func (t *Tensor[T, B]) Squeeze(dim int) *Tensor[T, B] {
	result := t.backend.Squeeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Gather selects elements from the tensor along a dimension using an index tensor.
//
// For each element in the index tensor, Gather selects the corresponding element
// from the input tensor along the specified dimension.
//
// Example:
//
//	x := tensor.Ones[float32](Shape{3, 5}, backend)
//	indices, _ := tensor.FromSlice([]int32{0, 2, 4}, Shape{3, 1}, backend)
//	y := x.Gather(1, indices)  // Shape: [3, 1]
func (t *Tensor[T, B]) Gather(dim int, index *Tensor[int32, B]) *Tensor[T, B] {
	result := t.backend.Gather(t.raw, dim, index.raw)
	return New[T, B](result, t.backend)
}

// Where selects elements from x or y based on condition.
//
// For each element:
//   - If condition is true, select from x
//   - If condition is false, select from y
//
// Supports broadcasting between condition, x, and y.
//
// Example:
//
//	cond := tensor.Full[bool](Shape{3}, true, backend)
//	x := tensor.Full[float32](Shape{3}, 1.0, backend)
//	y := tensor.Full[float32](Shape{3}, 0.0, backend)
//	result := tensor.Where(cond, x, y)  // [1.0, 1.0, 1.0]
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	result := x.backend.Where(cond.raw, x.raw, y.raw)
	return New[T, B](result, x.backend)
}
