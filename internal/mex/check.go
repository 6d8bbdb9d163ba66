package mex

import (
	"unsafe"

	"github.com/born-ml/mexutil/internal/mxarray"
)

// Dynamic is the expected row or column count that accepts any size.
const Dynamic = -1

// CheckArrayType returns the array's storage as a *T after checking that
// the array holds elements of type T. The pointer is nil for empty arrays
// and is only valid while the array is alive.
func CheckArrayType[T mxarray.Scalar](array mxarray.Array) (*T, error) {
	if !IsValidArray[T](array) {
		return nil, invalidArgument("MX array of invalid type.")
	}

	return (*T)(array.Data()), nil
}

// CheckArrayData is like CheckArrayType but returns a slice over all
// elements of the array.
func CheckArrayData[T mxarray.Scalar](array mxarray.Array) ([]T, error) {
	ptr, err := CheckArrayType[T](array)
	if err != nil {
		return nil, err
	}
	if ptr == nil {
		return nil, nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length taken from the descriptor
	return unsafe.Slice(ptr, array.NumElements()), nil
}

// CheckRows returns rows if it matches the expected count r, or if r is Dynamic.
func CheckRows(r, rows int) (int, error) {
	if r == Dynamic || r == rows {
		return rows, nil
	}
	return 0, invalidArgument("Mismatch between given (%d) and expected (%d) number of rows.", rows, r)
}

// CheckRowsOf checks the row count of array against r.
func CheckRowsOf(r int, array mxarray.Array) (int, error) {
	return CheckRows(r, array.M())
}

// CheckCols returns cols if it matches the expected count c, or if c is Dynamic.
func CheckCols(c, cols int) (int, error) {
	if c == Dynamic || c == cols {
		return cols, nil
	}
	return 0, invalidArgument("Mismatch between given (%d) and expected (%d) number of columns.", cols, c)
}

// CheckColsOf checks the column count of array against c.
func CheckColsOf(c int, array mxarray.Array) (int, error) {
	return CheckCols(c, array.N())
}
