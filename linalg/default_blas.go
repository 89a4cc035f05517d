// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

//go:build !gomat

package linalg

import "github.com/dense-la/dense/internal/backend/blas"

// Default builds bind the package-level operations to the blas64 backend.
var defaultBackend Backend = blas.New()
