package mex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mexutil/internal/mxarray"
)

func TestExpandSliceDims(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"both empty", nil, nil, []int{}},
		{"equal", []int{2, 3}, []int{2, 3}, []int{2, 3}},
		{"singleton expands", []int{1, 3}, []int{4, 1}, []int{4, 3}},
		{"a longer", []int{2, 3, 5}, []int{4}, []int{4, 3, 5}},
		{"b longer", []int{2}, []int{1, 7}, []int{2, 7}},
		{"zero extent against missing axis", []int{3, 0}, []int{3}, []int{3, 1}},
		{"mismatch takes max", []int{2, 3}, []int{5, 1}, []int{5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandSliceDims(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExpandSliceDims(%v, %v) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}

			// Symmetric in its arguments
			assert.Equal(t, got, ExpandSliceDims(tt.b, tt.a))
			assert.Len(t, got, max(len(tt.a), len(tt.b)))
		})
	}
}

func TestExpandSliceDims_Idempotent(t *testing.T) {
	for _, dims := range [][]int{{1}, {2, 3}, {4, 1, 6}} {
		assert.Equal(t, dims, ExpandSliceDims(dims, dims))
	}
}

func TestExpandSlices(t *testing.T) {
	got := ExpandSlices([]int{3, 3, 2, 1}, []int{4, 4, 1, 5, 6})
	assert.Equal(t, []int{2, 5, 6}, got)

	// Plain matrices have no slice axes
	assert.Equal(t, []int{}, ExpandSlices([]int{3, 3}, []int{2, 2}))
	assert.Equal(t, []int{7}, ExpandSlices([]int{3}, []int{2, 2, 7}))
}

func TestExpandSlicesOf(t *testing.T) {
	a, err := mxarray.NewDense(mxarray.Dims{2, 2, 3}, mxarray.Double)
	require.NoError(t, err)
	b, err := mxarray.NewDense(mxarray.Dims{2, 2, 1, 4}, mxarray.Double)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4}, ExpandSlicesOf(a, b))
}
