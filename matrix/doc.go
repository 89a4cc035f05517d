// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense storage types used throughout the
// module: a row-major float64 matrix and a contiguous float64 vector.
//
// # Overview
//
// Both types are flat-buffer views with explicit shape metadata:
//   - Dense: rows×cols float64, row-major, element (i, j) at data[i*cols+j]
//   - Vector: n contiguous float64
//
// The caller owns every buffer. Allocating constructors (NewDense,
// NewVector, Identity) create fresh zeroed storage; view constructors
// (DenseView, VectorView) wrap existing slices without copying, so the
// numerical operations in package linalg can work directly on buffers the
// surrounding computation engine already holds.
//
// # Basic Usage
//
//	a, _ := matrix.DenseView(2, 2, []float64{1, 2, 3, 4})
//	v := matrix.VectorView([]float64{3, 4})
//	c, _ := matrix.NewVector(2)
//
//	_ = linalg.Gemv(c, a, v, false, 1.0) // c += A·v
//
// # Thread Safety
//
// The types carry no synchronization. Concurrent reads are safe; concurrent
// writes to the same buffer are the caller's responsibility to serialize.
package matrix
