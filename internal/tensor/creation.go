package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case int32:
		one = int32(1)
	case int64:
		one = int64(1)
	case bool:
		one = true
	}

	for i := range data {
		data[i] = one.(T)
	}
	return t
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a 1D tensor with values [start, end) in steps of 1.
// Only works with numeric types.
//
// Example:
//
//	t := tensor.Arange[int32](0, 10, backend) // [0, 1, ..., 9]
func Arange[T DType, B Backend](start, end int, b B) *Tensor[T, B] {
	if end < start {
		panic("arange: end must be >= start")
	}

	n := end - start
	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()

	var dummy T
	for i := 0; i < n; i++ {
		var v any
		switch any(dummy).(type) {
		case float32:
			v = float32(start + i)
		case float64:
			v = float64(start + i)
		case int32:
			v = int32(start + i)
		case int64:
			v = int64(start + i)
		default:
			panic("arange: unsupported type")
		}
		data[i] = v.(T)
	}
	return t
}
