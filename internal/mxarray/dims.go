package mxarray

import "fmt"

// Dims holds the per-axis extents of an array in MATLAB (column-major) order.
type Dims []int

// Normalize returns the dims as MATLAB stores them: at least two axes,
// and no trailing singleton axes past the second.
func (d Dims) Normalize() (Dims, error) {
	for i, dim := range d {
		if dim < 0 {
			return nil, fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}

	n := len(d)
	for n > 2 && d[n-1] == 1 {
		n--
	}

	out := make(Dims, max(n, 2))
	for i := range out {
		out[i] = 1
	}
	if len(d) == 0 {
		out[0], out[1] = 0, 0
	}
	copy(out, d[:n])
	return out, nil
}

// NumElements returns the product of all extents.
func (d Dims) NumElements() int {
	n := 1
	for _, dim := range d {
		n *= dim
	}
	return n
}

// Clone returns a copy of the dims.
func (d Dims) Clone() Dims {
	clone := make(Dims, len(d))
	copy(clone, d)
	return clone
}
