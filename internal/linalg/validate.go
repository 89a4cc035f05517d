package linalg

import (
	"fmt"

	"github.com/dense-la/dense/internal/matrix"
)

// validateGemv checks c += alpha * op(a) * v before any backend call.
// Zero extents are rejected together with shape incompatibilities: GEMV's
// error contract is ErrShapeMismatch only.
func validateGemv(c *matrix.Vector, a *matrix.Dense, v *matrix.Vector, trans bool) error {
	if a.Rows() == 0 || a.Cols() == 0 || c.Len() == 0 || v.Len() == 0 {
		return fmt.Errorf("gemv: zero-sized operand: A %dx%d, C %d, V %d: %w",
			a.Rows(), a.Cols(), c.Len(), v.Len(), ErrShapeMismatch)
	}
	if trans {
		// op(A) is cols×rows.
		if a.Cols() != c.Len() || a.Rows() != v.Len() {
			return fmt.Errorf("gemv: op(A) %dx%d incompatible with C %d and V %d: %w",
				a.Cols(), a.Rows(), c.Len(), v.Len(), ErrShapeMismatch)
		}
		return nil
	}
	if a.Rows() != c.Len() || a.Cols() != v.Len() {
		return fmt.Errorf("gemv: A %dx%d incompatible with C %d and V %d: %w",
			a.Rows(), a.Cols(), c.Len(), v.Len(), ErrShapeMismatch)
	}
	return nil
}

// validateGemm checks c += alpha * op(a) * op(b) before any backend call.
// Each of the four transpose combinations keeps its own precondition branch
// so that every check reads directly against the multiply it guards.
func validateGemm(c, a, b *matrix.Dense, transA, transB bool) error {
	if a.Rows() == 0 || a.Cols() == 0 || b.Rows() == 0 || b.Cols() == 0 || c.Rows() == 0 || c.Cols() == 0 {
		return fmt.Errorf("gemm: zero-sized operand: A %dx%d, B %dx%d, C %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), c.Rows(), c.Cols(), ErrDegenerateOperand)
	}
	switch {
	case !transA && !transB:
		// C += alpha * A * B
		if a.Cols() != b.Rows() || a.Rows() != c.Rows() || b.Cols() != c.Cols() {
			return gemmShapeError(c, a, b, transA, transB)
		}
	case !transA && transB:
		// C += alpha * A * Bᵀ
		if a.Cols() != b.Cols() || a.Rows() != c.Rows() || b.Rows() != c.Cols() {
			return gemmShapeError(c, a, b, transA, transB)
		}
	case transA && !transB:
		// C += alpha * Aᵀ * B
		if a.Rows() != b.Rows() || a.Cols() != c.Rows() || b.Cols() != c.Cols() {
			return gemmShapeError(c, a, b, transA, transB)
		}
	default:
		// C += alpha * Aᵀ * Bᵀ
		if a.Rows() != b.Cols() || a.Cols() != c.Rows() || b.Rows() != c.Cols() {
			return gemmShapeError(c, a, b, transA, transB)
		}
	}
	return nil
}

func gemmShapeError(c, a, b *matrix.Dense, transA, transB bool) error {
	return fmt.Errorf("gemm: %s %dx%d by %s %dx%d incompatible with C %dx%d: %w",
		opName("A", transA), a.Rows(), a.Cols(),
		opName("B", transB), b.Rows(), b.Cols(),
		c.Rows(), c.Cols(), ErrShapeMismatch)
}

func opName(operand string, trans bool) string {
	if trans {
		return operand + "^T"
	}
	return operand
}
