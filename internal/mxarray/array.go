package mxarray

import (
	"fmt"
	"unsafe"
)

// Array is a read-only view of a host-owned array descriptor.
type Array interface {
	// NumDims returns the number of axes (always >= 2 for MATLAB arrays).
	NumDims() int
	// Dims returns the per-axis extents. Callers must not modify the result.
	Dims() Dims
	// M returns the number of rows.
	M() int
	// N returns the number of columns, i.e. the product of all axes but the first.
	N() int
	NumElements() int
	ClassID() ClassID
	IsSparse() bool
	IsComplex() bool
	// Data returns a pointer to the first real element, or nil for empty arrays.
	Data() unsafe.Pointer
}

// Dense is a full array stored contiguously in column-major order.
type Dense struct {
	dims  Dims
	class ClassID
	re    []byte
	im    []byte // nil for real arrays
}

// NewDense allocates a zeroed real array with the given dims and class.
func NewDense(dims Dims, class ClassID) (*Dense, error) {
	return newDense(dims, class, false)
}

// NewComplex allocates a zeroed complex array with separate real and
// imaginary parts.
func NewComplex(dims Dims, class ClassID) (*Dense, error) {
	return newDense(dims, class, true)
}

func newDense(dims Dims, class ClassID, complexData bool) (*Dense, error) {
	if class == Unknown {
		return nil, fmt.Errorf("cannot allocate array of class %s", class)
	}
	norm, err := dims.Normalize()
	if err != nil {
		return nil, fmt.Errorf("invalid dims: %w", err)
	}

	byteSize := norm.NumElements() * class.Size()
	d := &Dense{
		dims:  norm,
		class: class,
		re:    make([]byte, byteSize),
	}
	if complexData {
		d.im = make([]byte, byteSize)
	}
	return d, nil
}

// DenseFromSlice creates a real array from a Go slice laid out column-major.
// The slice is copied into the array's storage.
func DenseFromSlice[T Scalar](data []T, dims ...int) (*Dense, error) {
	d, err := NewDense(dims, ClassOf[T]())
	if err != nil {
		return nil, err
	}
	if d.NumElements() != len(data) {
		return nil, fmt.Errorf("dims %v require %d elements, but got %d", d.dims, d.NumElements(), len(data))
	}
	copy(View[T](d), data)
	return d, nil
}

// View interprets the real part of d as []T.
// Panics if T does not match the array class.
func View[T Scalar](d *Dense) []T {
	if c := ClassOf[T](); c != d.class {
		panic(fmt.Sprintf("array class is %s, not %s", d.class, c))
	}
	if len(d.re) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&d.re[0])), d.NumElements())
}

// NumDims returns the number of axes.
func (d *Dense) NumDims() int {
	return len(d.dims)
}

// Dims returns the per-axis extents.
func (d *Dense) Dims() Dims {
	return d.dims
}

// M returns the number of rows.
func (d *Dense) M() int {
	return d.dims[0]
}

// N returns the number of columns.
func (d *Dense) N() int {
	return d.dims[1:].NumElements()
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.dims.NumElements()
}

// ClassID returns the element class.
func (d *Dense) ClassID() ClassID {
	return d.class
}

// IsSparse always reports false for dense arrays.
func (d *Dense) IsSparse() bool {
	return false
}

// IsComplex reports whether the array carries an imaginary part.
func (d *Dense) IsComplex() bool {
	return d.im != nil
}

// Data returns a pointer to the real part.
func (d *Dense) Data() unsafe.Pointer {
	if len(d.re) == 0 {
		return nil
	}
	return unsafe.Pointer(&d.re[0])
}

// ImagData returns a pointer to the imaginary part, or nil for real arrays.
func (d *Dense) ImagData() unsafe.Pointer {
	if len(d.im) == 0 {
		return nil
	}
	return unsafe.Pointer(&d.im[0])
}

// Slices returns the slice shape: the extents of every axis after the
// leading row and column axes.
func (d *Dense) Slices() []int {
	return d.dims[2:].Clone()
}
