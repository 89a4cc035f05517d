package linalg

import (
	"fmt"
	"math"

	"github.com/dense-la/dense/internal/matrix"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a counting stub backend for tests. It records how many
// times each operation reaches the backend boundary, which lets tests prove
// that validation failures never delegate. When Fail is set every operation
// returns it without touching its operands.
//
// The arithmetic is implemented naively for correctness verification, so the
// mock also serves as a reference implementation to check real backends
// against.
type MockBackend struct {
	// Per-operation invocation counts.
	GemvCalls   int
	GemmCalls   int
	InvertCalls int
	SolveCalls  int

	// Fail, when non-nil, is returned by every operation.
	Fail error
}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string { return "mock" }

// Calls returns the total number of operations that reached the backend.
func (m *MockBackend) Calls() int {
	return m.GemvCalls + m.GemmCalls + m.InvertCalls + m.SolveCalls
}

// Gemv computes c += alpha * op(a) * v with plain loops.
func (m *MockBackend) Gemv(c *matrix.Vector, a *matrix.Dense, v *matrix.Vector, trans bool, alpha float64) error {
	m.GemvCalls++
	if m.Fail != nil {
		return m.Fail
	}
	rows, cols := a.Rows(), a.Cols()
	ad, vd, cd := a.Data(), v.Data(), c.Data()
	if trans {
		for j := 0; j < cols; j++ {
			sum := 0.0
			for i := 0; i < rows; i++ {
				sum += ad[i*cols+j] * vd[i]
			}
			cd[j] += alpha * sum
		}
		return nil
	}
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			sum += ad[i*cols+j] * vd[j]
		}
		cd[i] += alpha * sum
	}
	return nil
}

// Gemm computes c += alpha * op(a) * op(b) with plain loops.
func (m *MockBackend) Gemm(c, a, b *matrix.Dense, transA, transB bool, alpha float64) error {
	m.GemmCalls++
	if m.Fail != nil {
		return m.Fail
	}
	rows, cols := c.Rows(), c.Cols()
	inner := a.Cols()
	if transA {
		inner = a.Rows()
	}
	cd := c.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum := 0.0
			for k := 0; k < inner; k++ {
				sum += opAt(a, transA, i, k) * opAt(b, transB, k, j)
			}
			cd[i*cols+j] += alpha * sum
		}
	}
	return nil
}

// opAt reads element (i, j) of op(m) without materializing the transpose.
func opAt(m *matrix.Dense, trans bool, i, j int) float64 {
	if trans {
		return m.Data()[j*m.Cols()+i]
	}
	return m.Data()[i*m.Cols()+j]
}

// Invert overwrites a with its inverse via Gauss-Jordan elimination with
// partial pivoting.
func (m *MockBackend) Invert(a *matrix.Dense) error {
	m.InvertCalls++
	if m.Fail != nil {
		return m.Fail
	}
	return gaussJordanInvert(a)
}

// Solve overwrites b with a⁻¹·b by inverting a in place and multiplying.
func (m *MockBackend) Solve(a, b *matrix.Dense) error {
	m.SolveCalls++
	if m.Fail != nil {
		return m.Fail
	}
	if err := gaussJordanInvert(a); err != nil {
		return err
	}
	n, nrhs := b.Rows(), b.Cols()
	x := make([]float64, n*nrhs)
	ad, bd := a.Data(), b.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < nrhs; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += ad[i*n+k] * bd[k*nrhs+j]
			}
			x[i*nrhs+j] = sum
		}
	}
	copy(bd, x)
	return nil
}

func gaussJordanInvert(a *matrix.Dense) error {
	n := a.Rows()
	ad := a.Data()
	inv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}
	for col := 0; col < n; col++ {
		// Partial pivoting: largest magnitude entry on or below the diagonal.
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(ad[r*n+col]) > math.Abs(ad[pivot*n+col]) {
				pivot = r
			}
		}
		if ad[pivot*n+col] == 0 {
			return fmt.Errorf("mock: invert: singular at column %d: %w", col, ErrFactorizationFailed)
		}
		if pivot != col {
			swapRows(ad, n, pivot, col)
			swapRows(inv, n, pivot, col)
		}
		p := ad[col*n+col]
		for j := 0; j < n; j++ {
			ad[col*n+j] /= p
			inv[col*n+j] /= p
		}
		for r := 0; r < n; r++ {
			if r == col || ad[r*n+col] == 0 {
				continue
			}
			f := ad[r*n+col]
			for j := 0; j < n; j++ {
				ad[r*n+j] -= f * ad[col*n+j]
				inv[r*n+j] -= f * inv[col*n+j]
			}
		}
	}
	copy(ad, inv)
	return nil
}

func swapRows(data []float64, n, r1, r2 int) {
	for j := 0; j < n; j++ {
		data[r1*n+j], data[r2*n+j] = data[r2*n+j], data[r1*n+j]
	}
}
