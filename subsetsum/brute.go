package subsetsum

import "slices"

// BruteForceSums eagerly computes all 2ⁿ subset sums of values and returns them
// sorted ascending. It allocates 2ⁿ elements and is meant as a reference for
// small inputs (n ≲ 20), e.g. to cross-check an Enumerator.
//
// No validation is performed.
func BruteForceSums[T Number](values []T) []T {
	sums := make([]T, 1, 1<<len(values))
	for _, v := range values {
		for _, s := range sums {
			sums = append(sums, s+v)
		}
	}
	slices.Sort(sums)

	return sums
}
