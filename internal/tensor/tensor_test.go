package tensor

import (
	"testing"
)

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Bool, "bool"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("DataType.String() = %s, want %s", got, tt.str)
		}
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("Equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("Different shapes reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("Shapes of different rank reported equal")
	}
	if !(Shape{}).Equal(Shape{}) {
		t.Error("Scalar shapes reported unequal")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := (Shape{2, 3, 4}).ComputeStrides()
	want := []int{12, 4, 1}
	for i, w := range want {
		if strides[i] != w {
			t.Errorf("ComputeStrides()[%d] = %d, want %d", i, strides[i], w)
		}
	}

	if len((Shape{}).ComputeStrides()) != 0 {
		t.Error("Scalar shape should have empty strides")
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Valid shape rejected: %v", err)
	}
	if err := (Shape{}).Validate(); err != nil {
		t.Errorf("Scalar shape rejected: %v", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("Negative dimension accepted")
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Zero dimension accepted")
	}
}

func TestNormalizeDim(t *testing.T) {
	shape := Shape{2, 3}

	tests := []struct {
		dim  int
		want int
		ok   bool
	}{
		{0, 0, true},
		{1, 1, true},
		{-1, 1, true},
		{-2, 0, true},
		{2, 0, false},
		{-3, 0, false},
	}

	for _, tt := range tests {
		got, err := shape.NormalizeDim(tt.dim)
		if tt.ok {
			if err != nil {
				t.Errorf("NormalizeDim(%d) failed: %v", tt.dim, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDim(%d) = %d, want %d", tt.dim, got, tt.want)
			}
		} else if err == nil {
			t.Errorf("NormalizeDim(%d) should fail", tt.dim)
		}
	}
}

// Broadcasting Tests

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b     Shape
		want     Shape
		needed   bool
		wantFail bool
	}{
		{Shape{2, 3}, Shape{2, 3}, Shape{2, 3}, false, false},
		{Shape{2, 3}, Shape{3}, Shape{2, 3}, true, false},
		{Shape{2, 1}, Shape{1, 3}, Shape{2, 3}, true, false},
		{Shape{1}, Shape{4, 5}, Shape{4, 5}, true, false},
		{Shape{2, 3}, Shape{2, 4}, nil, false, true},
	}

	for _, tt := range tests {
		got, needed, err := BroadcastShapes(tt.a, tt.b)
		if tt.wantFail {
			if err == nil {
				t.Errorf("BroadcastShapes(%v, %v) should fail", tt.a, tt.b)
			}
			continue
		}
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) failed: %v", tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("BroadcastShapes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if needed != tt.needed {
			t.Errorf("BroadcastShapes(%v, %v) needed = %v, want %v", tt.a, tt.b, needed, tt.needed)
		}
	}
}
