// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

//go:build gomat

package linalg

import "github.com/dense-la/dense/internal/backend/gomat"

// Builds with -tags gomat bind the package-level operations to the
// gonum/mat backend.
var defaultBackend Backend = gomat.New()
