package mex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mexutil/internal/mxarray"
)

func TestDimensions(t *testing.T) {
	array, err := mxarray.NewDense(mxarray.Dims{3, 4, 2}, mxarray.Double)
	require.NoError(t, err)

	dims := Dimensions(array)
	if diff := cmp.Diff([]int{3, 4, 2}, dims); diff != "" {
		t.Errorf("Dimensions mismatch (-want +got):\n%s", diff)
	}

	// Result must not alias the descriptor
	dims[0] = 99
	assert.Equal(t, 3, array.Dims()[0])
}

func TestDimensions_Matrix(t *testing.T) {
	array, err := mxarray.NewDense(mxarray.Dims{5}, mxarray.Single)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 1}, Dimensions(array))
}

func TestDimensions_SparsePanics(t *testing.T) {
	array, err := mxarray.NewSparse(3, 3, 2, mxarray.Double)
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r, "Dimensions should panic on sparse arrays")
		aerr, ok := r.(*AssertionError)
		require.True(t, ok, "panic value should be *AssertionError, got %T", r)
		assert.Equal(t, "Array must be dense.", aerr.Msg)
	}()
	Dimensions(array)
}

func TestDimensionsVec(t *testing.T) {
	array, err := mxarray.NewDense(mxarray.Dims{3, 4, 2}, mxarray.Int32)
	require.NoError(t, err)

	vec := DimensionsVec(array)
	require.Equal(t, 3, vec.Len())
	assert.Equal(t, []float64{3, 4, 2}, []float64{vec.AtVec(0), vec.AtVec(1), vec.AtVec(2)})
}
