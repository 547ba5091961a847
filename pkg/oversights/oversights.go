// Package oversights contains small helpers the standard library leaves out.
package oversights

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Not returns a predicate that negates f.
func Not[A any](f func(A) bool) func(A) bool {
	return func(a A) bool {
		return !f(a)
	}
}

// Not2 is Not for two-argument predicates, e.g. to turn less into
// greater-or-equal.
func Not2[A, B any](f func(A, B) bool) func(A, B) bool {
	return func(a A, b B) bool {
		return !f(a, b)
	}
}

// LowerBoundFind returns the first index i with s[i] >= v and whether
// s[i] == v. s must be sorted in ascending order.
func LowerBoundFind[S ~[]E, E constraints.Ordered](s S, v E) (int, bool) {
	return LowerBoundFindFunc(s, v, func(a, b E) bool { return a < b })
}

// LowerBoundFindFunc is LowerBoundFind ordered by less. The element is found
// when the lower bound is in range and not greater than v.
func LowerBoundFindFunc[S ~[]E, E any](s S, v E, less func(a, b E) bool) (int, bool) {
	i := sort.Search(len(s), func(i int) bool {
		return !less(s[i], v)
	})
	return i, i < len(s) && !less(v, s[i])
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
