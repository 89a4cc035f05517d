// Package matrix provides the dense double-precision storage types consumed
// by the linalg dispatch layer: a row-major matrix and a contiguous vector.
//
// Both types are thin views over a flat []float64 buffer. The allocating
// constructors (NewDense, NewVector, Identity) create the buffer; the view
// constructors (DenseView, VectorView) wrap a caller-owned slice without
// copying, so writes through the view are visible in the original slice and
// vice versa. Operations elsewhere in the module mutate only the contents of
// a buffer, never its shape or ownership.
package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by constructors.
var (
	ErrInvalidShape = errors.New("matrix: invalid shape")
	ErrShortBuffer  = errors.New("matrix: buffer shorter than shape requires")
)

// Dense is a dense rows×cols matrix of float64 stored contiguously in
// row-major order. The element (i, j) lives at data[i*cols+j].
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a zero-initialized rows×cols matrix.
// Zero extents are permitted; negative extents are not.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// DenseView wraps a caller-owned slice as a rows×cols matrix without copying.
// The slice must hold at least rows*cols elements; only that prefix is used.
func DenseView(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if len(data) < rows*cols {
		return nil, fmt.Errorf("%w: need %d elements, have %d", ErrShortBuffer, rows*cols, len(data))
	}
	return &Dense{rows: rows, cols: cols, data: data[:rows*cols]}, nil
}

// Identity allocates the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.cols }

// Data returns the backing slice, of length exactly Rows()*Cols().
// Mutating it mutates the matrix.
func (m *Dense) Data() []float64 { return m.data }

// At returns the element at row i, column j.
// It panics if the indices are out of range.
func (m *Dense) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set writes the element at row i, column j.
// It panics if the indices are out of range.
func (m *Dense) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Dense) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Clone returns a deep copy with its own freshly allocated buffer.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// EqualApprox reports whether m and other have the same shape and all
// elements agree within the absolute tolerance tol.
func (m *Dense) EqualApprox(other *Dense, tol float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if d := v - other.data[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}

// String renders the matrix row by row, for diagnostics and test failures.
func (m *Dense) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d[", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
