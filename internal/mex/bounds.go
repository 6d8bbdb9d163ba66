package mex

// IsValidSlice checks sliceMins <= slice <= sliceMaxs coefficient-wise.
// The slice may be longer than the bounds, in which case the extra
// entries must all be zero. sliceMins and sliceMaxs must have equal length.
func IsValidSlice(slice, sliceMins, sliceMaxs []int) bool {
	precondition(len(sliceMins) == len(sliceMaxs), "Slice bounds must have equal size.")

	sliceDims := len(sliceMins)
	if len(slice) < sliceDims {
		return false
	}

	head, tail := slice[:sliceDims], slice[sliceDims:]
	if len(head) == 0 {
		return isZero(tail)
	}

	for i, s := range head {
		if s < sliceMins[i] || s > sliceMaxs[i] {
			return false
		}
	}
	return len(tail) == 0 || isZero(tail)
}

func isZero(v []int) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
