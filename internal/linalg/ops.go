package linalg

import (
	"fmt"

	"github.com/dense-la/dense/internal/matrix"
)

// Gemv computes c += alpha * op(a) * v, where op(a) is aᵀ when trans is set.
// Shapes are validated first; on ErrShapeMismatch the backend is never
// invoked and c is left untouched.
func Gemv(be Backend, c *matrix.Vector, a *matrix.Dense, v *matrix.Vector, trans bool, alpha float64) error {
	if err := validateGemv(c, a, v, trans); err != nil {
		return err
	}
	return be.Gemv(c, a, v, trans, alpha)
}

// Gemm computes c += alpha * op(a) * op(b), with an independent transpose
// flag per input operand. Degenerate operands and incompatible shapes are
// rejected before the backend is invoked, leaving c untouched.
func Gemm(be Backend, c, a, b *matrix.Dense, transA, transB bool, alpha float64) error {
	if err := validateGemm(c, a, b, transA, transB); err != nil {
		return err
	}
	return be.Gemm(c, a, b, transA, transB, alpha)
}

// Invert overwrites the square matrix a with its inverse, computed by an LU
// factorization followed by reconstruction of the factored inverse. A
// non-square input is rejected with ErrNotSquare before either backend step,
// leaving a untouched. On ErrFactorizationFailed (singular input) the
// contents of a are unspecified and must not be used.
func Invert(be Backend, a *matrix.Dense) error {
	if a.Rows() != a.Cols() {
		return fmt.Errorf("invert: matrix is %dx%d: %w", a.Rows(), a.Cols(), ErrNotSquare)
	}
	if a.Rows() == 0 {
		return nil // the empty matrix is its own inverse
	}
	return be.Invert(a)
}

// Solve overwrites b with a⁻¹·b. The square matrix a serves as factorization
// workspace; after the call its contents are unspecified. On any error the
// solution has not been produced and b's contents are unspecified, except
// for validation failures, which leave both operands untouched.
func Solve(be Backend, a, b *matrix.Dense) error {
	if a.Rows() != a.Cols() {
		return fmt.Errorf("solve: matrix is %dx%d: %w", a.Rows(), a.Cols(), ErrNotSquare)
	}
	if a.Rows() != b.Rows() {
		return fmt.Errorf("solve: A %dx%d incompatible with B %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch)
	}
	if a.Rows() == 0 || b.Cols() == 0 {
		return nil
	}
	return be.Solve(a, b)
}
