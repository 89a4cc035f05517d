// Package main provides the dense CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dense-la/dense/linalg"
	"github.com/dense-la/dense/matrix"
)

const version = "v0.1.0-dev"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("dense %s\n", version)
			return
		case "backend":
			fmt.Printf("active backend: %s\n", linalg.Default().Name())
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Printf("dense %s - dense linear algebra dispatch for Go\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  backend    Show the backend selected at build time")
	fmt.Println("  demo       Invert a 2x2 matrix and print the residual")
}

// demo inverts a small matrix and reports how far A·A⁻¹ is from identity.
func demo() {
	a, _ := matrix.DenseView(2, 2, []float64{1, 2, 3, 4})
	orig := a.Clone()

	if err := linalg.Invert(a); err != nil {
		log.Fatal().Err(err).Msg("inversion failed")
	}
	log.Info().Str("backend", linalg.Default().Name()).Msg("inverted 2x2 matrix")

	// residual = A·A⁻¹ - I
	residual, _ := matrix.Identity(2)
	for i := range residual.Data() {
		residual.Data()[i] = -residual.Data()[i]
	}
	if err := linalg.Gemm(residual, orig, a, false, false, 1.0); err != nil {
		log.Fatal().Err(err).Msg("residual multiply failed")
	}

	maxAbs := 0.0
	for _, v := range residual.Data() {
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}
	fmt.Printf("A         = %v\n", orig)
	fmt.Printf("inv(A)    = %v\n", a)
	fmt.Printf("max |A*inv(A) - I| = %.3g\n", maxAbs)
}
