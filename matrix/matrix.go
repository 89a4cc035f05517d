// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	internalmatrix "github.com/dense-la/dense/internal/matrix"
)

// Dense is a dense rows×cols matrix of float64 in row-major order.
type Dense = internalmatrix.Dense

// Vector is a contiguous vector of float64.
type Vector = internalmatrix.Vector

// Errors reported by constructors.
var (
	ErrInvalidShape = internalmatrix.ErrInvalidShape
	ErrShortBuffer  = internalmatrix.ErrShortBuffer
)

// NewDense allocates a zero-initialized rows×cols matrix.
func NewDense(rows, cols int) (*Dense, error) {
	return internalmatrix.NewDense(rows, cols)
}

// DenseView wraps a caller-owned slice as a rows×cols matrix without
// copying. The slice must hold at least rows*cols elements.
func DenseView(rows, cols int, data []float64) (*Dense, error) {
	return internalmatrix.DenseView(rows, cols, data)
}

// Identity allocates the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	return internalmatrix.Identity(n)
}

// NewVector allocates a zero-initialized vector of length n.
func NewVector(n int) (*Vector, error) {
	return internalmatrix.NewVector(n)
}

// VectorView wraps a caller-owned slice as a vector without copying.
func VectorView(data []float64) *Vector {
	return internalmatrix.VectorView(data)
}
