// Copyright 2025 Flint ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU compute backend for Flint ML.
//
// The CPU backend implements all tensor operations in pure Go and is the
// reference backend for the library.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
package cpu

import (
	"github.com/flint-ml/flint/internal/backend/cpu"
	"github.com/flint-ml/flint/internal/tensor"
)

// Backend is the CPU compute backend.
type Backend = cpu.CPUBackend

// New creates a new CPU backend instance.
func New() *Backend {
	return cpu.New()
}

// Compile-time check that the CPU backend satisfies the Backend interface.
var _ tensor.Backend = (*Backend)(nil)
