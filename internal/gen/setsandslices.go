//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"slices"
)

//
// SETS AND SLICES
//

// ToSet - returns a blank map of a slice
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{})
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

// Unique - return only the unique items from a slice
func Unique[T comparable](s []T) []T {
	// can't use slices.Compact because that only looks at consecutive repeats: [a, a, b, a] -> [a, b, a]

	set := ToSet(s)

	var result []T
	for k := range set {
		result = append(result, k)
	}

	return result
}

// SetSubtraction - all members of aa that are not also members of bb
func SetSubtraction[T comparable](aa []T, bb []T) []T {
	//  NB this is likely SLOW: be careful looping it 10k times
	// 	aa := []string{"a", "b", "c", "d", "g", "h"}
	//	bb := []string{"a", "b", "e", "f", "g"}
	//	dd := SetSubtraction(aa, bb)
	//  [c d h]

	bb = Unique(bb)

	aa = slices.DeleteFunc(aa, func(c T) bool {
		return slices.Contains(bb, c)
	})

	return aa
}
