// Package blas implements the numerical backend on top of gonum's blas64
// and lapack64 buffer-level interfaces: explicit row/column counts, leading
// dimensions, transpose selectors and raw float64 slices.
//
// By default the arithmetic runs on gonum's pure Go implementations. Builds
// with the netlib tag register a system BLAS/LAPACK (OpenBLAS, Accelerate)
// behind the same calls.
package blas

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/dense-la/dense/internal/linalg"
	"github.com/dense-la/dense/internal/matrix"
)

// Verify that Backend implements linalg.Backend.
var _ linalg.Backend = (*Backend)(nil)

// Backend routes operations to blas64/lapack64. It is stateless and safe
// for concurrent use on disjoint buffers.
type Backend struct{}

// New creates a new BLAS backend.
func New() *Backend { return &Backend{} }

// Name returns the backend name.
func (*Backend) Name() string { return "blas64" }

// general wraps a matrix buffer as a blas64.General without copying.
// The leading dimension of a row-major matrix is its column count.
func general(m *matrix.Dense) blas64.General {
	return blas64.General{
		Rows:   m.Rows(),
		Cols:   m.Cols(),
		Stride: max(1, m.Cols()),
		Data:   m.Data(),
	}
}

// vec wraps a vector buffer as a unit-stride blas64.Vector without copying.
func vec(v *matrix.Vector) blas64.Vector {
	return blas64.Vector{N: v.Len(), Inc: 1, Data: v.Data()}
}

func transpose(t bool) blas.Transpose {
	if t {
		return blas.Trans
	}
	return blas.NoTrans
}

// Gemv computes c += alpha * op(a) * v through blas64.Gemv with beta = 1.
func (*Backend) Gemv(c *matrix.Vector, a *matrix.Dense, v *matrix.Vector, trans bool, alpha float64) (err error) {
	defer linalg.CapturePanic(&err, "blas: gemv", linalg.ErrShapeMismatch)
	blas64.Gemv(transpose(trans), alpha, general(a), vec(v), 1, vec(c))
	return nil
}

// Gemm computes c += alpha * op(a) * op(b) through blas64.Gemm with beta = 1.
func (*Backend) Gemm(c, a, b *matrix.Dense, transA, transB bool, alpha float64) (err error) {
	defer linalg.CapturePanic(&err, "blas: gemm", linalg.ErrShapeMismatch)
	blas64.Gemm(transpose(transA), transpose(transB), alpha, general(a), general(b), 1, general(c))
	return nil
}

// Invert overwrites a with its inverse: lapack64.Getrf produces the
// row-pivoted LU factorization in place, then lapack64.Getri reconstructs
// the inverse from it. The pivot record and workspace are function-scoped
// and released on every exit path. If factorization reports a singular
// matrix the second step is not attempted and a is left in the
// partially-factored state Getrf produced.
func (*Backend) Invert(a *matrix.Dense) (err error) {
	defer linalg.CapturePanic(&err, "blas: invert", linalg.ErrFactorizationFailed)
	ga := general(a)
	ipiv := make([]int, a.Rows())
	if ok := lapack64.Getrf(ga, ipiv); !ok {
		return fmt.Errorf("blas: invert: lu factorization reported singular matrix: %w",
			linalg.ErrFactorizationFailed)
	}
	work := []float64{0}
	lapack64.Getri(ga, ipiv, work, -1) // workspace size query
	lwork := max(int(work[0]), a.Rows())
	work = make([]float64, lwork)
	if ok := lapack64.Getri(ga, ipiv, work, lwork); !ok {
		return fmt.Errorf("blas: invert: inverse reconstruction failed: %w",
			linalg.ErrFactorizationFailed)
	}
	return nil
}

// Solve overwrites b with a⁻¹·b: Getrf factorizes a in place, Getrs applies
// the factored form to the right-hand sides.
func (*Backend) Solve(a, b *matrix.Dense) (err error) {
	defer linalg.CapturePanic(&err, "blas: solve", linalg.ErrFactorizationFailed)
	ga := general(a)
	ipiv := make([]int, a.Rows())
	if ok := lapack64.Getrf(ga, ipiv); !ok {
		return fmt.Errorf("blas: solve: lu factorization reported singular matrix: %w",
			linalg.ErrFactorizationFailed)
	}
	lapack64.Getrs(blas.NoTrans, ga, general(b), ipiv)
	return nil
}
