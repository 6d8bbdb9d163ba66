package mex

import "github.com/born-ml/mexutil/internal/mxarray"

// Dimensions returns a copy of the per-axis extents of a dense array.
// Panics with *AssertionError if the array is sparse.
func Dimensions(array mxarray.Array) []int {
	precondition(!array.IsSparse(), "Array must be dense.")

	numDims := array.NumDims()
	out := make([]int, numDims)
	copy(out, array.Dims()[:numDims])
	return out
}
