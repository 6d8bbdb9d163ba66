// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mxarray

import (
	"github.com/born-ml/mexutil/internal/mxarray"
)

// Scalar is a constraint for element types that map onto an array class.
type Scalar = mxarray.Scalar

// ClassID identifies the runtime element type of an array.
type ClassID = mxarray.ClassID

// Array classes.
const (
	Unknown ClassID = mxarray.Unknown
	Double  ClassID = mxarray.Double
	Single  ClassID = mxarray.Single
	Int8    ClassID = mxarray.Int8
	Uint8   ClassID = mxarray.Uint8
	Int16   ClassID = mxarray.Int16
	Uint16  ClassID = mxarray.Uint16
	Int32   ClassID = mxarray.Int32
	Uint32  ClassID = mxarray.Uint32
	Int64   ClassID = mxarray.Int64
	Uint64  ClassID = mxarray.Uint64
	Logical ClassID = mxarray.Logical
	Char    ClassID = mxarray.Char
)

// Dims holds per-axis extents in column-major order.
type Dims = mxarray.Dims

// Array is a read-only view of a host array descriptor.
type Array = mxarray.Array

// Dense is a full column-major array.
type Dense = mxarray.Dense

// Sparse is a compressed-column matrix descriptor.
type Sparse = mxarray.Sparse

// NewDense allocates a zeroed real array.
func NewDense(dims Dims, class ClassID) (*Dense, error) {
	return mxarray.NewDense(dims, class)
}

// NewComplex allocates a zeroed complex array.
func NewComplex(dims Dims, class ClassID) (*Dense, error) {
	return mxarray.NewComplex(dims, class)
}

// NewSparse allocates an all-zero sparse matrix with room for nzmax nonzeros.
func NewSparse(m, n, nzmax int, class ClassID) (*Sparse, error) {
	return mxarray.NewSparse(m, n, nzmax, class)
}

// DenseFromSlice creates an array from column-major data.
func DenseFromSlice[T Scalar](data []T, dims ...int) (*Dense, error) {
	return mxarray.DenseFromSlice(data, dims...)
}

// View interprets the real part of d as []T. Panics on a class mismatch.
func View[T Scalar](d *Dense) []T {
	return mxarray.View[T](d)
}

// ClassOf returns the class whose elements have Go type T.
func ClassOf[T Scalar]() ClassID {
	return mxarray.ClassOf[T]()
}

// ParseClass returns the class with the given MATLAB name, or Unknown.
func ParseClass(name string) ClassID {
	return mxarray.ParseClass(name)
}
