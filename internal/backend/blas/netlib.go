//go:build netlib

package blas

// Builds with -tags netlib route blas64/lapack64 through the system
// BLAS/LAPACK (Accelerate on macOS, OpenBLAS on Linux) instead of gonum's
// pure Go implementations. Requires cgo.

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	netlibblas "gonum.org/v1/netlib/blas/netlib"
	netliblapack "gonum.org/v1/netlib/lapack/netlib"
)

func init() {
	blas64.Use(netlibblas.Implementation{})
	lapack64.Use(netliblapack.Implementation{})
	log.Debug().Msg("netlib BLAS/LAPACK registered")
}
