package tensor

import (
	"testing"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != Float32 {
		t.Errorf("DType = %s, want float32", raw.DType())
	}
	if raw.Device() != CPU {
		t.Errorf("Device = %v, want CPU", raw.Device())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", raw.NumElements())
	}
}

func TestNewRaw_Scalar(t *testing.T) {
	raw, err := NewRaw(Shape{}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw scalar failed: %v", err)
	}
	if raw.NumElements() != 1 {
		t.Errorf("Scalar NumElements = %d, want 1", raw.NumElements())
	}
	if len(raw.AsFloat32()) != 1 {
		t.Errorf("Scalar data length = %d, want 1", len(raw.AsFloat32()))
	}
}

func TestNewRaw_InvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, -1}, Float32, CPU); err == nil {
		t.Error("Expected error for negative dimension")
	}
}

func TestRawTensorAsFloat32(t *testing.T) {
	raw, _ := NewRaw(Shape{3, 2}, Float32, CPU)
	data := raw.AsFloat32()

	if len(data) != 6 {
		t.Errorf("AsFloat32 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsFloat32()[0] != 42 {
		t.Error("AsFloat32 should return zero-copy slice")
	}
}

func TestRawTensorAsFloat32_WrongDType(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Int32, CPU)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for dtype mismatch")
		}
	}()
	raw.AsFloat32()
}

func TestRawTensorClone(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	raw.AsFloat32()[0] = 1.5

	clone := raw.Clone()
	clone.AsFloat32()[0] = 99

	if raw.AsFloat32()[0] != 1.5 {
		t.Error("Clone should deep-copy the data buffer")
	}
	if !clone.Shape().Equal(raw.Shape()) {
		t.Errorf("Clone shape = %v, want %v", clone.Shape(), raw.Shape())
	}
}

func TestRawTensorWithShape(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32, CPU)
	raw.AsFloat32()[4] = 7

	view := raw.WithShape(Shape{6})
	if !view.Shape().Equal(Shape{6}) {
		t.Errorf("View shape = %v, want [6]", view.Shape())
	}
	if view.AsFloat32()[4] != 7 {
		t.Error("WithShape should share the data buffer")
	}

	// Writes through the view are visible in the original.
	view.AsFloat32()[0] = 3
	if raw.AsFloat32()[0] != 3 {
		t.Error("WithShape view should alias the original buffer")
	}
}

func TestRawTensorWithShape_ElementCountMismatch(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32, CPU)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for element count mismatch")
		}
	}()
	raw.WithShape(Shape{5})
}
