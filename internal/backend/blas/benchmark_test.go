package blas

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/dense-la/dense/internal/linalg"
	"github.com/dense-la/dense/internal/matrix"
)

func benchDense(rng *rand.Rand, rows, cols int) *matrix.Dense {
	m, _ := matrix.NewDense(rows, cols)
	for i := range m.Data() {
		m.Data()[i] = rng.Float64()
	}
	return m
}

func BenchmarkGemv(b *testing.B) {
	be := New()
	rng := rand.New(rand.NewSource(1))
	a := benchDense(rng, 256, 256)
	v, _ := matrix.NewVector(256)
	c, _ := matrix.NewVector(256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := linalg.Gemv(be, c, a, v, false, 1.0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGemm(b *testing.B) {
	for _, size := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			be := New()
			rng := rand.New(rand.NewSource(1))
			x := benchDense(rng, size, size)
			y := benchDense(rng, size, size)
			c, _ := matrix.NewDense(size, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := linalg.Gemm(be, c, x, y, false, false, 1.0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInvert(b *testing.B) {
	be := New()
	rng := rand.New(rand.NewSource(1))
	src := benchDense(rng, 64, 64)
	for i := 0; i < 64; i++ {
		src.Set(i, i, src.At(i, i)+64)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		a := src.Clone()
		b.StartTimer()
		if err := linalg.Invert(be, a); err != nil {
			b.Fatal(err)
		}
	}
}
