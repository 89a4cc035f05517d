// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	internallinalg "github.com/dense-la/dense/internal/linalg"
	"github.com/dense-la/dense/matrix"
)

// Backend performs the arithmetic behind the package-level operations.
// See the internal definition for the implementation contract.
type Backend = internallinalg.Backend

// Sentinel errors returned by the operations; match with errors.Is.
var (
	ErrShapeMismatch       = internallinalg.ErrShapeMismatch
	ErrDegenerateOperand   = internallinalg.ErrDegenerateOperand
	ErrNotSquare           = internallinalg.ErrNotSquare
	ErrFactorizationFailed = internallinalg.ErrFactorizationFailed
)

// Default returns the backend selected at build time.
func Default() Backend { return defaultBackend }

// Gemv computes c += alpha * op(a) * v on the default backend, where op(a)
// is aᵀ when trans is set. On ErrShapeMismatch, c is left untouched.
func Gemv(c *matrix.Vector, a *matrix.Dense, v *matrix.Vector, trans bool, alpha float64) error {
	return internallinalg.Gemv(defaultBackend, c, a, v, trans, alpha)
}

// Gemm computes c += alpha * op(a) * op(b) on the default backend, with an
// independent transpose flag per input operand. On ErrShapeMismatch or
// ErrDegenerateOperand, c is left untouched.
func Gemm(c, a, b *matrix.Dense, transA, transB bool, alpha float64) error {
	return internallinalg.Gemm(defaultBackend, c, a, b, transA, transB, alpha)
}

// Invert overwrites the square matrix a with its inverse on the default
// backend. Non-square input returns ErrNotSquare with a untouched; a
// singular input returns ErrFactorizationFailed and leaves a in an
// unspecified partially-factored state.
func Invert(a *matrix.Dense) error {
	return internallinalg.Invert(defaultBackend, a)
}

// Solve overwrites b with a⁻¹·b on the default backend. a is consumed as
// factorization workspace; its contents are unspecified after the call.
func Solve(a, b *matrix.Dense) error {
	return internallinalg.Solve(defaultBackend, a, b)
}

// GemvWith is Gemv on an explicitly supplied backend.
func GemvWith(be Backend, c *matrix.Vector, a *matrix.Dense, v *matrix.Vector, trans bool, alpha float64) error {
	return internallinalg.Gemv(be, c, a, v, trans, alpha)
}

// GemmWith is Gemm on an explicitly supplied backend.
func GemmWith(be Backend, c, a, b *matrix.Dense, transA, transB bool, alpha float64) error {
	return internallinalg.Gemm(be, c, a, b, transA, transB, alpha)
}

// InvertWith is Invert on an explicitly supplied backend.
func InvertWith(be Backend, a *matrix.Dense) error {
	return internallinalg.Invert(be, a)
}

// SolveWith is Solve on an explicitly supplied backend.
func SolveWith(be Backend, a, b *matrix.Dense) error {
	return internallinalg.Solve(be, a, b)
}
