package cpu

import (
	"math"
	"testing"

	"github.com/flint-ml/flint/internal/tensor"
)

func TestExp(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{3}, []float32{0, 1, -1})

	result := backend.Exp(x)
	got := result.AsFloat32()
	expected := []float64{1, math.E, 1 / math.E}
	for i, exp := range expected {
		if math.Abs(float64(got[i])-exp) > 1e-5 {
			t.Errorf("Index %d: expected %v, got %v", i, exp, got[i])
		}
	}
}

func TestLog(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{2}, []float32{1, float32(math.E)})

	result := backend.Log(x)
	got := result.AsFloat32()
	if math.Abs(float64(got[0])) > 1e-6 {
		t.Errorf("Expected log(1)=0, got %v", got[0])
	}
	if math.Abs(float64(got[1])-1.0) > 1e-5 {
		t.Errorf("Expected log(e)=1, got %v", got[1])
	}
}

func TestLog_EdgeValues(t *testing.T) {
	backend := New()

	// log(0) = -Inf and log(-1) = NaN follow IEEE semantics rather
	// than being rejected.
	x := rawFloat32(t, tensor.Shape{2}, []float32{0, -1})

	result := backend.Log(x)
	got := result.AsFloat32()
	if !math.IsInf(float64(got[0]), -1) {
		t.Errorf("Expected log(0) = -Inf, got %v", got[0])
	}
	if !math.IsNaN(float64(got[1])) {
		t.Errorf("Expected log(-1) = NaN, got %v", got[1])
	}
}

func TestAbs(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{3}, []float32{-2.5, 0, 3})

	result := backend.Abs(x)
	got := result.AsFloat32()
	expected := []float32{2.5, 0, 3}
	for i, exp := range expected {
		if got[i] != exp {
			t.Errorf("Index %d: expected %v, got %v", i, exp, got[i])
		}
	}
}

func TestSquare(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{3}, []float32{-2, 0.5, 3})

	result := backend.Square(x)
	got := result.AsFloat32()
	expected := []float32{4, 0.25, 9}
	for i, exp := range expected {
		if got[i] != exp {
			t.Errorf("Index %d: expected %v, got %v", i, exp, got[i])
		}
	}
}

func TestMathOps_IntDTypePanics(t *testing.T) {
	backend := New()

	x := rawInt32(t, tensor.Shape{2}, []int32{1, 2})

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for int dtype")
		}
	}()
	backend.Exp(x)
}
