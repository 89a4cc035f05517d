// Package linalg implements the dispatch layer for dense double-precision
// linear algebra: shape validation, a uniform operation contract, and
// delegation to a numerical backend.
//
// The package holds no state. Every operation is a pure function over
// caller-owned buffers: it validates operand shapes, hands the call to the
// given Backend, and reports failure as a wrapped sentinel error. Concurrent
// calls are safe as long as they target disjoint result buffers; the layer
// performs no locking.
package linalg

import "github.com/dense-la/dense/internal/matrix"

// Backend performs the actual arithmetic for the dispatch operations.
// Implementations receive operands whose shapes have already been validated
// and must honour accumulate semantics: Gemv and Gemm add the scaled product
// onto the existing contents of c.
//
// Implementations:
//   - backend/blas: gonum blas64/lapack64 buffer-level calls with explicit
//     strides (optionally routed to a system BLAS/LAPACK via the netlib
//     build tag)
//   - backend/gomat: gonum/mat zero-copy views evaluated through matrix
//     expressions
//
// A backend must never panic across this boundary; internal panics are
// recovered and translated into the package's sentinel errors.
type Backend interface {
	// Gemv computes c += alpha * op(a) * v, where op(a) is aᵀ when trans
	// is set.
	Gemv(c *matrix.Vector, a *matrix.Dense, v *matrix.Vector, trans bool, alpha float64) error

	// Gemm computes c += alpha * op(a) * op(b), with an independent
	// transpose flag per input operand.
	Gemm(c, a, b *matrix.Dense, transA, transB bool, alpha float64) error

	// Invert overwrites the square matrix a with its inverse, computed from
	// an LU factorization. On ErrFactorizationFailed the contents of a are
	// unspecified.
	Invert(a *matrix.Dense) error

	// Solve overwrites b with a⁻¹·b using an LU factorization of the square
	// matrix a. a is scratch space for the factorization; on any error the
	// contents of both operands are unspecified.
	Solve(a, b *matrix.Dense) error

	// Name identifies the backend in logs and diagnostics.
	Name() string
}
