package bigint

// RealSize reports the index past the highest non-zero limb of a,
// i.e. the minimal length a slice of a's value could be normalized to.
func RealSize(a []uint64) int {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return n
}

// Cmp compares a and b as unsigned multi-precision integers, returning
// -1, 0 or +1. Equality ignores any non-significant high limbs, matching
// spec's FixedInt equality rule.
func Cmp(a, b []uint64) int {
	na, nb := RealSize(a), RealSize(b)
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	}
	for i := na - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// IsZero reports whether a is the zero value.
func IsZero(a []uint64) bool {
	return RealSize(a) == 0
}
