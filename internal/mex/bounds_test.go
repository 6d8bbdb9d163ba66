package mex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlice(t *testing.T) {
	mins := []int{2, 5}
	maxs := []int{4, 8}

	tests := []struct {
		name  string
		slice []int
		want  bool
	}{
		{"inside", []int{3, 5}, true},
		{"on lower bound", []int{2, 5}, true},
		{"on upper bound", []int{4, 8}, true},
		{"below lower bound", []int{1, 6}, false},
		{"above upper bound", []int{3, 9}, false},
		{"trailing zero", []int{3, 6, 0}, true},
		{"trailing zeros", []int{3, 6, 0, 0}, true},
		{"trailing nonzero", []int{3, 6, 1}, false},
		{"too short", []int{3}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSlice(tt.slice, mins, maxs))
		})
	}
}

func TestIsValidSlice_PointBounds(t *testing.T) {
	bounds := []int{2, 5}

	assert.True(t, IsValidSlice([]int{2, 5}, bounds, bounds))
	assert.False(t, IsValidSlice([]int{3, 4}, bounds, bounds))
	assert.True(t, IsValidSlice([]int{2, 5, 0}, bounds, bounds))
	assert.False(t, IsValidSlice([]int{2, 5, 1}, bounds, bounds))
}

func TestIsValidSlice_NoBounds(t *testing.T) {
	assert.True(t, IsValidSlice(nil, nil, nil))
	assert.True(t, IsValidSlice([]int{}, []int{}, []int{}))
	assert.True(t, IsValidSlice([]int{0, 0, 0}, nil, nil))
	assert.False(t, IsValidSlice([]int{0, 1}, nil, nil))
}

func TestIsValidSlice_MismatchedBoundsPanics(t *testing.T) {
	assert.Panics(t, func() {
		IsValidSlice([]int{1, 1}, []int{0, 0}, []int{2})
	})
}
