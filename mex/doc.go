// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mex provides the argument helpers used by MEX bindings.
//
// # Overview
//
// The helpers fall into two groups with different failure channels:
//   - Dimensions panics with *AssertionError when handed a sparse array.
//     This is a caller bug and is not meant to be recovered.
//   - CheckArrayType, CheckRows and CheckCols return errors matching
//     ErrInvalidArgument, to be reported back to MATLAB.
//
// Slice shapes are the extents of every axis after rows and columns.
// ExpandSlices broadcasts two of them (missing axes count as 1) and
// IsValidSlice checks a slice index against per-axis bounds.
//
// # Basic Usage
//
//	weights, err := mex.CheckArrayType[float64](prhs[0])
//	if err != nil {
//	    return err
//	}
//	rows, err := mex.CheckRowsOf(3, prhs[0])       // exactly 3 rows
//	cols, err := mex.CheckColsOf(mex.Dynamic, prhs[0]) // any number of columns
package mex
