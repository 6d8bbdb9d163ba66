// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mxarray describes the host arrays a MEX function receives.
//
// # Overview
//
// MATLAB hands every argument to a MEX function as an opaque mxArray. This
// package models that descriptor:
//   - Array, the read-only view the helpers in package mex inspect
//   - Dense, a column-major full array with optional imaginary part
//   - Sparse, a compressed-column matrix descriptor
//
// Dims follow MATLAB conventions: every array has at least two axes and
// trailing singleton axes past the second are dropped.
//
// # Basic Usage
//
//	a, _ := mxarray.DenseFromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	a.Dims()    // [2 3]
//	a.M(), a.N() // 2, 3
//	mxarray.View[float64](a) // zero-copy access
package mxarray
