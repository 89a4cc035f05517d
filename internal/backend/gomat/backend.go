// Package gomat implements the numerical backend on top of gonum/mat:
// zero-copy mat.Dense and mat.VecDense views are constructed over the
// caller's row-major buffers and combined through matrix expressions
// (T, Mul, Scale, Add, Inverse, Solve).
//
// gonum/mat signals misuse by panicking and near-singularity through
// mat.Condition errors; both are translated into the dispatch layer's
// sentinel errors at this boundary and never reach caller code.
package gomat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dense-la/dense/internal/linalg"
	"github.com/dense-la/dense/internal/matrix"
)

// Verify that Backend implements linalg.Backend.
var _ linalg.Backend = (*Backend)(nil)

// Backend routes operations to gonum/mat. It is stateless and safe for
// concurrent use on disjoint buffers.
type Backend struct{}

// New creates a new gonum/mat backend.
func New() *Backend { return &Backend{} }

// Name returns the backend name.
func (*Backend) Name() string { return "gonum/mat" }

// view maps a matrix buffer onto a mat.Dense without copying.
func view(m *matrix.Dense) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.Data())
}

// vecView maps a vector buffer onto a mat.VecDense without copying.
func vecView(v *matrix.Vector) *mat.VecDense {
	return mat.NewVecDense(v.Len(), v.Data())
}

// Gemv evaluates c += alpha * op(a) * v into the view over c's buffer.
func (*Backend) Gemv(c *matrix.Vector, a *matrix.Dense, v *matrix.Vector, trans bool, alpha float64) (err error) {
	defer linalg.CapturePanic(&err, "gomat: gemv", linalg.ErrShapeMismatch)
	var opA mat.Matrix = view(a)
	if trans {
		opA = opA.T()
	}
	cv := vecView(c)
	var prod mat.VecDense
	prod.MulVec(opA, vecView(v))
	cv.AddScaledVec(cv, alpha, &prod)
	return nil
}

// Gemm evaluates c += alpha * op(a) * op(b) into the view over c's buffer.
func (*Backend) Gemm(c, a, b *matrix.Dense, transA, transB bool, alpha float64) (err error) {
	defer linalg.CapturePanic(&err, "gomat: gemm", linalg.ErrShapeMismatch)
	var opA mat.Matrix = view(a)
	if transA {
		opA = opA.T()
	}
	var opB mat.Matrix = view(b)
	if transB {
		opB = opB.T()
	}
	cv := view(c)
	var prod mat.Dense
	prod.Mul(opA, opB)
	prod.Scale(alpha, &prod)
	cv.Add(cv, &prod)
	return nil
}

// Invert evaluates the inverse of a and writes it back into a's buffer.
// A singular or near-singular input surfaces as ErrFactorizationFailed and
// leaves a's contents unchanged (the evaluation happens out of place).
func (*Backend) Invert(a *matrix.Dense) (err error) {
	defer linalg.CapturePanic(&err, "gomat: invert", linalg.ErrFactorizationFailed)
	var inv mat.Dense
	if err := inv.Inverse(view(a)); err != nil {
		return fmt.Errorf("gomat: invert: %v: %w", err, linalg.ErrFactorizationFailed)
	}
	copy(a.Data(), inv.RawMatrix().Data)
	return nil
}

// Solve evaluates a⁻¹·b and writes the solution back into b's buffer.
func (*Backend) Solve(a, b *matrix.Dense) (err error) {
	defer linalg.CapturePanic(&err, "gomat: solve", linalg.ErrFactorizationFailed)
	var x mat.Dense
	if err := x.Solve(view(a), view(b)); err != nil {
		return fmt.Errorf("gomat: solve: %v: %w", err, linalg.ErrFactorizationFailed)
	}
	copy(b.Data(), x.RawMatrix().Data)
	return nil
}
