// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg dispatches dense double-precision linear algebra to a
// numerical backend selected at build time.
//
// # Overview
//
// Three primitives (plus a linear solve) share one pattern: validate
// operand shapes, delegate to the active backend, report failure as a
// wrapped sentinel error:
//   - Gemv:   C += alpha · op(A) · V
//   - Gemm:   C += alpha · op(A) · op(B)
//   - Invert: A ← A⁻¹ (in place, LU factorization with row pivoting)
//   - Solve:  B ← A⁻¹ · B
//
// Gemv and Gemm accumulate: the prior contents of the result operand are
// added to, never overwritten. Invert and Solve overwrite their output
// operand.
//
// # Backends
//
// Exactly one backend is active per build, never mixed:
//   - default: gonum blas64/lapack64 buffer-level calls. Builds with
//     -tags netlib additionally route them through the system BLAS/LAPACK.
//   - -tags gomat: gonum/mat zero-copy views combined through matrix
//     expressions.
//
// Both are opaque to this package; their native failure signals (boolean
// info flags, error values, panics) are translated into the sentinel
// errors below and never reach the caller in backend-specific form.
//
// # Errors
//
// Every failure is returned as an error wrapping one of ErrShapeMismatch,
// ErrDegenerateOperand, ErrNotSquare or ErrFactorizationFailed; match them
// with errors.Is. No input, however malformed, terminates the process. On
// any error the result operand is untouched, with one documented
// exception: a failed Invert leaves the matrix in an unspecified
// partially-factored state.
//
// # Basic Usage
//
//	a, _ := matrix.DenseView(2, 2, []float64{1, 2, 3, 4})
//	if err := linalg.Invert(a); err != nil {
//	    if errors.Is(err, linalg.ErrFactorizationFailed) {
//	        // regularize and retry, or abort the surrounding computation
//	    }
//	}
//
// # Thread Safety
//
// The package holds no state; calls targeting disjoint result buffers may
// run concurrently. Concurrent calls sharing a result buffer are undefined.
package linalg
