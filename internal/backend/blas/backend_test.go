package blas

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dense-la/dense/internal/linalg"
	"github.com/dense-la/dense/internal/matrix"
)

const tol = 1e-9

func randomDense(t *testing.T, rng *rand.Rand, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := range m.Data() {
		m.Data()[i] = rng.NormFloat64()
	}
	return m
}

func TestBackend_Name(t *testing.T) {
	assert.Equal(t, "blas64", New().Name())
}

func TestGemv_IdentityAccumulate(t *testing.T) {
	be := New()
	a, _ := matrix.Identity(2)
	v := matrix.VectorView([]float64{3, 4})
	c := matrix.VectorView([]float64{0, 0})

	require.NoError(t, linalg.Gemv(be, c, a, v, false, 1.0))
	assert.InDeltaSlice(t, []float64{3, 4}, c.Data(), tol)

	// A second call accumulates on top of the first.
	require.NoError(t, linalg.Gemv(be, c, a, v, false, 1.0))
	assert.InDeltaSlice(t, []float64{6, 8}, c.Data(), tol)
}

func TestGemv_AlphaZeroLeavesCUnchanged(t *testing.T) {
	be := New()
	rng := rand.New(rand.NewSource(42))
	a := randomDense(t, rng, 4, 3)
	v := matrix.VectorView([]float64{1, 2, 3})
	c := matrix.VectorView([]float64{9, 8, 7, 6})

	require.NoError(t, linalg.Gemv(be, c, a, v, false, 0.0))
	assert.Equal(t, []float64{9, 8, 7, 6}, c.Data())
}

func TestGemv_SymmetricRoundTrip(t *testing.T) {
	be := New()
	// Symmetric A: adding alpha=1 then subtracting with the transposed
	// flag must return C to its original value.
	a, _ := matrix.DenseView(2, 2, []float64{2, 5, 5, 3})
	v := matrix.VectorView([]float64{1, -2})
	c := matrix.VectorView([]float64{0.5, 0.25})
	orig := c.Clone()

	require.NoError(t, linalg.Gemv(be, c, a, v, false, 1.0))
	require.NoError(t, linalg.Gemv(be, c, a, v, true, -1.0))
	assert.InDeltaSlice(t, orig.Data(), c.Data(), tol)
}

func TestGemv_Transposed(t *testing.T) {
	be := New()
	a, _ := matrix.DenseView(2, 3, []float64{1, 2, 3, 4, 5, 6})
	v := matrix.VectorView([]float64{1, 1})
	c := matrix.VectorView([]float64{0, 0, 0})

	require.NoError(t, linalg.Gemv(be, c, a, v, true, 1.0))
	assert.InDeltaSlice(t, []float64{5, 7, 9}, c.Data(), tol)
}

func TestGemm_AllTransposeCombinations(t *testing.T) {
	be := New()
	rng := rand.New(rand.NewSource(7))
	const m, n, k = 5, 4, 3

	tests := []struct {
		name           string
		transA, transB bool
		aR, aC, bR, bC int
	}{
		{"NN", false, false, m, k, k, n},
		{"NT", false, true, m, k, n, k},
		{"TN", true, false, k, m, k, n},
		{"TT", true, true, k, m, n, k},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := randomDense(t, rng, tt.aR, tt.aC)
			b := randomDense(t, rng, tt.bR, tt.bC)
			c := randomDense(t, rng, m, n)
			want := c.Clone()

			// Reference result from the naive mock backend.
			require.NoError(t, linalg.NewMockBackend().Gemm(want, a.Clone(), b.Clone(), tt.transA, tt.transB, 0.75))
			require.NoError(t, linalg.Gemm(be, c, a, b, tt.transA, tt.transB, 0.75))
			assert.InDeltaSlice(t, want.Data(), c.Data(), tol)
		})
	}
}

func TestGemm_ConsistentWithGemvOnSingleColumn(t *testing.T) {
	be := New()
	rng := rand.New(rand.NewSource(11))
	a := randomDense(t, rng, 4, 3)
	b := randomDense(t, rng, 3, 1)

	cMat, _ := matrix.NewDense(4, 1)
	cVec, _ := matrix.NewVector(4)
	v := matrix.VectorView(b.Data())

	require.NoError(t, linalg.Gemm(be, cMat, a, b, false, false, 1.5))
	require.NoError(t, linalg.Gemv(be, cVec, a, v, false, 1.5))
	assert.InDeltaSlice(t, cVec.Data(), cMat.Data(), tol)
}

func TestInvert_Concrete2x2(t *testing.T) {
	be := New()
	a, _ := matrix.DenseView(2, 2, []float64{1, 2, 3, 4})

	require.NoError(t, linalg.Invert(be, a))
	assert.InDeltaSlice(t, []float64{-2, 1, 1.5, -0.5}, a.Data(), tol)
}

func TestInvert_TimesOriginalIsIdentity(t *testing.T) {
	be := New()
	rng := rand.New(rand.NewSource(3))
	const n = 6
	a := randomDense(t, rng, n, n)
	// Diagonal dominance keeps the matrix comfortably well-conditioned.
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+float64(n))
	}
	orig := a.Clone()

	require.NoError(t, linalg.Invert(be, a))

	// residual = A·A⁻¹ - I
	prod, _ := matrix.NewDense(n, n)
	require.NoError(t, linalg.Gemm(be, prod, orig, a, false, false, 1.0))
	eye, _ := matrix.Identity(n)
	assert.True(t, prod.EqualApprox(eye, tol), "A*inv(A) = %v", prod)
}

func TestInvert_InvolutionRestoresInput(t *testing.T) {
	be := New()
	rng := rand.New(rand.NewSource(5))
	const n = 5
	a := randomDense(t, rng, n, n)
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+float64(n))
	}
	orig := a.Clone()

	require.NoError(t, linalg.Invert(be, a))
	require.NoError(t, linalg.Invert(be, a))
	assert.True(t, a.EqualApprox(orig, 1e-8), "invert(invert(A)) = %v, want %v", a, orig)
}

func TestInvert_SingularReportsFactorizationFailed(t *testing.T) {
	be := New()
	a, _ := matrix.DenseView(2, 2, []float64{1, 2, 2, 4})

	err := linalg.Invert(be, a)
	require.ErrorIs(t, err, linalg.ErrFactorizationFailed)
}

func TestInvert_NotSquareLeavesInputUntouched(t *testing.T) {
	be := New()
	a, _ := matrix.DenseView(2, 3, []float64{1, 2, 3, 4, 5, 6})

	err := linalg.Invert(be, a)
	require.ErrorIs(t, err, linalg.ErrNotSquare)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Data())
}

func TestSolve_MatchesInvertThenMultiply(t *testing.T) {
	be := New()
	rng := rand.New(rand.NewSource(13))
	const n, nrhs = 4, 2
	a := randomDense(t, rng, n, n)
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+float64(n))
	}
	b := randomDense(t, rng, n, nrhs)

	// Route 1: Solve.
	aWork := a.Clone()
	x := b.Clone()
	require.NoError(t, linalg.Solve(be, aWork, x))

	// Route 2: explicit inverse then multiply.
	inv := a.Clone()
	require.NoError(t, linalg.Invert(be, inv))
	want, _ := matrix.NewDense(n, nrhs)
	require.NoError(t, linalg.Gemm(be, want, inv, b, false, false, 1.0))

	assert.InDeltaSlice(t, want.Data(), x.Data(), tol)
}

func TestSolve_SingularReportsFactorizationFailed(t *testing.T) {
	be := New()
	a, _ := matrix.DenseView(2, 2, []float64{1, 2, 2, 4})
	b, _ := matrix.NewDense(2, 1)

	err := linalg.Solve(be, a, b)
	require.ErrorIs(t, err, linalg.ErrFactorizationFailed)
}
