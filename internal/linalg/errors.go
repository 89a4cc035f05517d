package linalg

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the dispatch operations. Call sites wrap them
// with operation and shape context; match with errors.Is.
var (
	// ErrShapeMismatch reports operand dimensions that are incompatible for
	// the requested operation and transpose combination.
	ErrShapeMismatch = errors.New("linalg: operand shapes incompatible")

	// ErrDegenerateOperand reports a zero-sized matrix operand where the
	// multiply requires nonzero extents.
	ErrDegenerateOperand = errors.New("linalg: zero-sized operand")

	// ErrNotSquare reports an inversion or solve requested on a non-square
	// matrix.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrFactorizationFailed reports a singular or numerically unfactorable
	// matrix. After this error the operand's contents are unspecified.
	ErrFactorizationFailed = errors.New("linalg: factorization failed")
)

// CapturePanic converts a panic raised inside a backend into a wrapped kind
// error, so that no backend-internal panic ever crosses into caller code.
// Backends call it in a defer with a named error return:
//
//	func (b *Backend) Invert(a *matrix.Dense) (err error) {
//		defer linalg.CapturePanic(&err, "invert", linalg.ErrFactorizationFailed)
//		...
//	}
func CapturePanic(errp *error, op string, kind error) {
	if r := recover(); r != nil {
		*errp = fmt.Errorf("%s: backend panic: %v: %w", op, r, kind)
	}
}
