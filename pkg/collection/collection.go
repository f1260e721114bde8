// Package collection provides small generic slice helpers used when
// projecting models into response views.
//
// Usage:
//
//	views := collection.Map(products, toProductResponse)
package collection

import "sort"

// Map applies fn to each element of s and returns the results.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// SortBy sorts s in-place using less and returns it for chaining.
func SortBy[T any](s []T, less func(a, b T) bool) []T {
	sort.Slice(s, func(i, j int) bool { return less(s[i], s[j]) })
	return s
}
