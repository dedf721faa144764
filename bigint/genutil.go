package bigint

import "golang.org/x/exp/constraints"

// minOf and maxOf are small generic helpers over ordered integer types
// (limb counts, widths, bit counts), grounded on the same
// golang.org/x/exp/constraints usage as utils/structs/map.go's generic
// container code in the teacher.
func minOf[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxOf[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func absOf[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
