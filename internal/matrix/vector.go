package matrix

import "fmt"

// Vector is a contiguous vector of float64.
type Vector struct {
	n    int
	data []float64
}

// NewVector allocates a zero-initialized vector of length n.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidShape, n)
	}
	return &Vector{n: n, data: make([]float64, n)}, nil
}

// VectorView wraps a caller-owned slice as a vector without copying.
func VectorView(data []float64) *Vector {
	return &Vector{n: len(data), data: data}
}

// Len returns the number of elements.
func (v *Vector) Len() int { return v.n }

// Data returns the backing slice. Mutating it mutates the vector.
func (v *Vector) Data() []float64 { return v.data }

// At returns the i-th element. It panics if i is out of range.
func (v *Vector) At(i int) float64 {
	v.checkIndex(i)
	return v.data[i]
}

// Set writes the i-th element. It panics if i is out of range.
func (v *Vector) Set(i int, x float64) {
	v.checkIndex(i)
	v.data[i] = x
}

func (v *Vector) checkIndex(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("matrix: index %d out of range for vector of length %d", i, v.n))
	}
}

// Clone returns a deep copy with its own buffer.
func (v *Vector) Clone() *Vector {
	data := make([]float64, v.n)
	copy(data, v.data)
	return &Vector{n: v.n, data: data}
}

// EqualApprox reports whether v and other have the same length and all
// elements agree within the absolute tolerance tol.
func (v *Vector) EqualApprox(other *Vector, tol float64) bool {
	if v.n != other.n {
		return false
	}
	for i, x := range v.data {
		if d := x - other.data[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}

// String renders the vector elements, for diagnostics and test failures.
func (v *Vector) String() string {
	return fmt.Sprintf("vec%v", v.data)
}
