package mex

import "github.com/born-ml/mexutil/internal/mxarray"

// IsValidArray reports whether array can be read as a dense, real buffer
// of T. The class must match T exactly; no implicit conversions are made.
func IsValidArray[T mxarray.Scalar](array mxarray.Array) bool {
	class := mxarray.ClassOf[T]()
	if class == mxarray.Unknown {
		return false
	}
	return array.ClassID() == class &&
		!array.IsSparse() &&
		!array.IsComplex()
}
