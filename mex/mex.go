// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mex

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mexutil/internal/mex"
	"github.com/born-ml/mexutil/mxarray"
)

// Dynamic accepts any row or column count.
const Dynamic = mex.Dynamic

// ErrInvalidArgument is matched by every recoverable validation failure.
var ErrInvalidArgument = mex.ErrInvalidArgument

// ArgumentError is returned when an argument has the wrong type or size.
type ArgumentError = mex.ArgumentError

// AssertionError is the panic value for broken preconditions.
type AssertionError = mex.AssertionError

// Sliced is implemented by values that expose a slice shape.
type Sliced = mex.Sliced

// Dimensions returns the extents of a dense array.
// Panics with *AssertionError if the array is sparse.
func Dimensions(array mxarray.Array) []int {
	return mex.Dimensions(array)
}

// DimensionsVec returns the extents of a dense array as a gonum vector.
func DimensionsVec(array mxarray.Array) *mat.VecDense {
	return mex.DimensionsVec(array)
}

// ExpandSliceDims broadcasts two slice shapes.
func ExpandSliceDims(sliceDimsA, sliceDimsB []int) []int {
	return mex.ExpandSliceDims(sliceDimsA, sliceDimsB)
}

// ExpandSlices broadcasts the slice shapes of two full dimension vectors.
func ExpandSlices(dimsA, dimsB []int) []int {
	return mex.ExpandSlices(dimsA, dimsB)
}

// ExpandSlicesOf broadcasts the slice shapes of two sliced values.
func ExpandSlicesOf(a, b Sliced) []int {
	return mex.ExpandSlicesOf(a, b)
}

// IsValidSlice checks sliceMins <= slice <= sliceMaxs coefficient-wise,
// requiring any extra trailing entries of slice to be zero.
func IsValidSlice(slice, sliceMins, sliceMaxs []int) bool {
	return mex.IsValidSlice(slice, sliceMins, sliceMaxs)
}

// IsValidArray reports whether array is a dense, real array of T.
func IsValidArray[T mxarray.Scalar](array mxarray.Array) bool {
	return mex.IsValidArray[T](array)
}

// CheckArrayType returns the array storage as *T after a type check.
func CheckArrayType[T mxarray.Scalar](array mxarray.Array) (*T, error) {
	return mex.CheckArrayType[T](array)
}

// CheckArrayData returns the array storage as []T after a type check.
func CheckArrayData[T mxarray.Scalar](array mxarray.Array) ([]T, error) {
	return mex.CheckArrayData[T](array)
}

// CheckRows validates a row count against r, which may be Dynamic.
func CheckRows(r, rows int) (int, error) {
	return mex.CheckRows(r, rows)
}

// CheckRowsOf validates the row count of array against r.
func CheckRowsOf(r int, array mxarray.Array) (int, error) {
	return mex.CheckRowsOf(r, array)
}

// CheckCols validates a column count against c, which may be Dynamic.
func CheckCols(c, cols int) (int, error) {
	return mex.CheckCols(c, cols)
}

// CheckColsOf validates the column count of array against c.
func CheckColsOf(c int, array mxarray.Array) (int, error) {
	return mex.CheckColsOf(c, array)
}

// ToDense copies a double array into a gonum matrix.
func ToDense(array mxarray.Array, rows, cols int) (*mat.Dense, error) {
	return mex.ToDense(array, rows, cols)
}

// ToVecDense copies a double column vector into a gonum vector.
func ToVecDense(array mxarray.Array, rows int) (*mat.VecDense, error) {
	return mex.ToVecDense(array, rows)
}

// FromDense copies a gonum matrix into a new double array.
func FromDense(m mat.Matrix) (*mxarray.Dense, error) {
	return mex.FromDense(m)
}
