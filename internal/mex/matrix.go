package mex

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mexutil/internal/mxarray"
)

// DimensionsVec returns the dimensions of a dense array as a gonum vector.
// Panics with *AssertionError if the array is sparse.
func DimensionsVec(array mxarray.Array) *mat.VecDense {
	dims := Dimensions(array)
	if len(dims) == 0 {
		return &mat.VecDense{}
	}

	data := make([]float64, len(dims))
	for i, d := range dims {
		data[i] = float64(d)
	}
	return mat.NewVecDense(len(data), data)
}

// ToDense copies a double array into a gonum matrix. rows and cols are the
// expected sizes; either may be Dynamic.
func ToDense(array mxarray.Array, rows, cols int) (*mat.Dense, error) {
	data, err := CheckArrayData[float64](array)
	if err != nil {
		return nil, err
	}
	r, err := CheckRowsOf(rows, array)
	if err != nil {
		return nil, err
	}
	c, err := CheckColsOf(cols, array)
	if err != nil {
		return nil, err
	}
	if r == 0 || c == 0 {
		return nil, errors.WithMessagef(invalidArgument("Empty %dx%d array.", r, c), "ToDense(%d, %d)", rows, cols)
	}

	// MATLAB stores columns contiguously, gonum stores rows.
	out := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			out.Set(i, j, data[j*r+i])
		}
	}
	return out, nil
}

// ToVecDense copies a double column vector into a gonum vector.
func ToVecDense(array mxarray.Array, rows int) (*mat.VecDense, error) {
	data, err := CheckArrayData[float64](array)
	if err != nil {
		return nil, err
	}
	if _, err := CheckColsOf(1, array); err != nil {
		return nil, err
	}
	r, err := CheckRowsOf(rows, array)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, errors.WithMessagef(invalidArgument("Empty column vector."), "ToVecDense(%d)", rows)
	}

	return mat.NewVecDense(r, append([]float64(nil), data...)), nil
}

// FromDense copies a gonum matrix into a new double array.
func FromDense(m mat.Matrix) (*mxarray.Dense, error) {
	r, c := m.Dims()
	out, err := mxarray.NewDense(mxarray.Dims{r, c}, mxarray.Double)
	if err != nil {
		return nil, errors.Wrap(err, "FromDense")
	}

	data := mxarray.View[float64](out)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			data[j*r+i] = m.At(i, j)
		}
	}
	return out, nil
}
