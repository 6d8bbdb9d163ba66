package mex

// Sliced is implemented by values that expose a slice shape.
type Sliced interface {
	Slices() []int
}

// ExpandSliceDims broadcasts two slice shapes [..., i, ...] and [..., j, ...]
// into [..., max(i, j), ...]. Missing axes count as 1.
func ExpandSliceDims(sliceDimsA, sliceDimsB []int) []int {
	sliceDims := make([]int, max(len(sliceDimsA), len(sliceDimsB)))

	for i := range sliceDims {
		a, b := 1, 1
		if i < len(sliceDimsA) {
			a = sliceDimsA[i]
		}
		if i < len(sliceDimsB) {
			b = sliceDimsB[i]
		}
		sliceDims[i] = max(a, b)
	}

	return sliceDims
}

// ExpandSlices broadcasts the slice shapes of two full dimension vectors,
// ignoring the leading row and column axes of each.
func ExpandSlices(dimsA, dimsB []int) []int {
	return ExpandSliceDims(sliceOf(dimsA), sliceOf(dimsB))
}

// ExpandSlicesOf broadcasts the slice shapes of two sliced values.
func ExpandSlicesOf(a, b Sliced) []int {
	return ExpandSliceDims(a.Slices(), b.Slices())
}

func sliceOf(dims []int) []int {
	if len(dims) < 2 {
		return nil
	}
	return dims[2:]
}
