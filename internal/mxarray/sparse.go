package mxarray

import (
	"fmt"
	"unsafe"
)

// Sparse is a two-dimensional array in compressed column storage.
// Only the descriptor is modelled; elements live in pr, indexed by ir and jc.
type Sparse struct {
	m, n  int
	class ClassID
	pr    []byte
	ir    []int
	jc    []int
}

// NewSparse allocates an all-zero sparse array with room for nzmax nonzeros.
// MATLAB only supports double and logical sparse arrays.
func NewSparse(m, n, nzmax int, class ClassID) (*Sparse, error) {
	if class != Double && class != Logical {
		return nil, fmt.Errorf("sparse arrays of class %s are not supported", class)
	}
	if m < 0 || n < 0 {
		return nil, fmt.Errorf("invalid sparse dims %dx%d", m, n)
	}
	if nzmax < 1 {
		nzmax = 1
	}
	return &Sparse{
		m:     m,
		n:     n,
		class: class,
		pr:    make([]byte, nzmax*class.Size()),
		ir:    make([]int, nzmax),
		jc:    make([]int, n+1),
	}, nil
}

// NumDims returns 2; sparse arrays are always matrices.
func (s *Sparse) NumDims() int {
	return 2
}

// Dims returns [m n].
func (s *Sparse) Dims() Dims {
	return Dims{s.m, s.n}
}

// M returns the number of rows.
func (s *Sparse) M() int {
	return s.m
}

// N returns the number of columns.
func (s *Sparse) N() int {
	return s.n
}

// NumElements returns m*n, the logical element count.
func (s *Sparse) NumElements() int {
	return s.m * s.n
}

// ClassID returns the element class.
func (s *Sparse) ClassID() ClassID {
	return s.class
}

// IsSparse always reports true.
func (s *Sparse) IsSparse() bool {
	return true
}

// IsComplex always reports false.
func (s *Sparse) IsComplex() bool {
	return false
}

// Data returns a pointer to the nonzero values.
func (s *Sparse) Data() unsafe.Pointer {
	return unsafe.Pointer(&s.pr[0])
}

// NonZeros returns the number of stored nonzeros.
func (s *Sparse) NonZeros() int {
	return s.jc[s.n]
}
