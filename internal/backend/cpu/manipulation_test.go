package cpu

import (
	"testing"

	"github.com/flint-ml/flint/internal/tensor"
)

func TestUnsqueeze(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	cases := []struct {
		dim      int
		expected tensor.Shape
	}{
		{0, tensor.Shape{1, 2, 3}},
		{1, tensor.Shape{2, 1, 3}},
		{2, tensor.Shape{2, 3, 1}},
		{-1, tensor.Shape{2, 3, 1}},
	}

	for _, tc := range cases {
		result := backend.Unsqueeze(x, tc.dim)
		if !result.Shape().Equal(tc.expected) {
			t.Errorf("Unsqueeze dim %d: expected %v, got %v", tc.dim, tc.expected, result.Shape())
		}
		// Data is shared, not copied.
		if result.AsFloat32()[5] != 6.0 {
			t.Errorf("Unsqueeze dim %d: data not preserved", tc.dim)
		}
	}
}

func TestSqueeze(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{2, 1, 3}, []float32{1, 2, 3, 4, 5, 6})

	result := backend.Squeeze(x, 1)
	if !result.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Expected shape [2 3], got %v", result.Shape())
	}

	result = backend.Squeeze(x, -2)
	if !result.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Expected shape [2 3] for dim -2, got %v", result.Shape())
	}
}

func TestSqueeze_NonUnitDimPanics(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when squeezing a dimension of size > 1")
		}
	}()
	backend.Squeeze(x, 1)
}
