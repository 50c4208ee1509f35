package cpu

import (
	"math"
	"testing"

	"github.com/flint-ml/flint/internal/tensor"
)

func rawFloat32(t *testing.T, shape tensor.Shape, data []float32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsFloat32(), data)
	return raw
}

func TestSumDim_1D(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{4}, []float32{1, 2, 3, 4})

	result := backend.SumDim(x, 0, true)
	if !result.Shape().Equal(tensor.Shape{1}) {
		t.Errorf("Expected shape [1], got %v", result.Shape())
	}
	if result.AsFloat32()[0] != 10.0 {
		t.Errorf("Expected 10, got %v", result.AsFloat32()[0])
	}

	result = backend.SumDim(x, 0, false)
	if len(result.Shape()) != 0 {
		t.Errorf("Expected scalar shape, got %v", result.Shape())
	}
	if result.AsFloat32()[0] != 10.0 {
		t.Errorf("Expected 10, got %v", result.AsFloat32()[0])
	}
}

func TestSumDim_2D(t *testing.T) {
	backend := New()

	// Row 0: [1, 2, 3], Row 1: [4, 5, 6]
	x := rawFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	// Sum along last dim -> [2]
	result := backend.SumDim(x, 1, false)
	if !result.Shape().Equal(tensor.Shape{2}) {
		t.Errorf("Expected shape [2], got %v", result.Shape())
	}
	got := result.AsFloat32()
	if got[0] != 6.0 || got[1] != 15.0 {
		t.Errorf("Expected [6, 15], got %v", got)
	}

	// Negative dim resolves to last dim
	result = backend.SumDim(x, -1, false)
	got = result.AsFloat32()
	if got[0] != 6.0 || got[1] != 15.0 {
		t.Errorf("Expected [6, 15] for dim -1, got %v", got)
	}

	// Sum along first dim -> [3]
	result = backend.SumDim(x, 0, false)
	if !result.Shape().Equal(tensor.Shape{3}) {
		t.Errorf("Expected shape [3], got %v", result.Shape())
	}
	got = result.AsFloat32()
	if got[0] != 5.0 || got[1] != 7.0 || got[2] != 9.0 {
		t.Errorf("Expected [5, 7, 9], got %v", got)
	}
}

func TestMeanDim(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{2, 2}, []float32{1, 3, 5, 7})

	result := backend.MeanDim(x, 1, false)
	got := result.AsFloat32()
	if got[0] != 2.0 || got[1] != 6.0 {
		t.Errorf("Expected [2, 6], got %v", got)
	}

	result = backend.MeanDim(x, 0, true)
	if !result.Shape().Equal(tensor.Shape{1, 2}) {
		t.Errorf("Expected shape [1 2], got %v", result.Shape())
	}
	got = result.AsFloat32()
	if got[0] != 3.0 || got[1] != 5.0 {
		t.Errorf("Expected [3, 5], got %v", got)
	}
}

func TestLogSumExp_MatchesNaive(t *testing.T) {
	backend := New()

	data := []float32{1, 2, 3, -1, 0, 1}
	x := rawFloat32(t, tensor.Shape{2, 3}, data)

	result := backend.LogSumExp(x, 1, false)
	if !result.Shape().Equal(tensor.Shape{2}) {
		t.Errorf("Expected shape [2], got %v", result.Shape())
	}

	got := result.AsFloat32()
	for row := 0; row < 2; row++ {
		sum := 0.0
		for col := 0; col < 3; col++ {
			sum += math.Exp(float64(data[row*3+col]))
		}
		expected := float32(math.Log(sum))
		if math.Abs(float64(got[row]-expected)) > 1e-5 {
			t.Errorf("Row %d: expected %v, got %v", row, expected, got[row])
		}
	}
}

func TestLogSumExp_Stability(t *testing.T) {
	backend := New()

	// exp(1000) overflows float32; max subtraction keeps the result finite.
	x := rawFloat32(t, tensor.Shape{1, 3}, []float32{1000, 1001, 1002})

	result := backend.LogSumExp(x, -1, false)
	got := result.AsFloat32()[0]
	if math.IsInf(float64(got), 0) || math.IsNaN(float64(got)) {
		t.Fatalf("Expected finite result, got %v", got)
	}

	expected := 1002.0 + math.Log(math.Exp(-2)+math.Exp(-1)+1)
	if math.Abs(float64(got)-expected) > 1e-3 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestLogSumExp_3D(t *testing.T) {
	backend := New()

	// Shape [2, 2, 2], reduce middle dim.
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	x := rawFloat32(t, tensor.Shape{2, 2, 2}, data)

	result := backend.LogSumExp(x, 1, false)
	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Errorf("Expected shape [2 2], got %v", result.Shape())
	}

	got := result.AsFloat32()
	// Groups in row-major output order: (0,0), (0,1), (1,0), (1,1)
	pairs := [][2]float32{{1, 3}, {2, 4}, {5, 7}, {6, 8}}
	for i, p := range pairs {
		expected := float32(math.Log(math.Exp(float64(p[0])) + math.Exp(float64(p[1]))))
		if math.Abs(float64(got[i]-expected)) > 1e-5 {
			t.Errorf("Group %d: expected %v, got %v", i, expected, got[i])
		}
	}
}

func TestSum_AllElements(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	result := backend.Sum(x)
	if len(result.Shape()) != 0 {
		t.Errorf("Expected scalar shape, got %v", result.Shape())
	}
	if result.AsFloat32()[0] != 21.0 {
		t.Errorf("Expected 21, got %v", result.AsFloat32()[0])
	}
}

func TestMean_AllElements(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{4}, []float32{2, 4, 6, 8})

	result := backend.Mean(x)
	if result.AsFloat32()[0] != 5.0 {
		t.Errorf("Expected 5, got %v", result.AsFloat32()[0])
	}
}
