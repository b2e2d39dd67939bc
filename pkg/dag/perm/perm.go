// Package perm enumerates permutations for exhaustive row ordering.
//
// The UML orderer tries every arrangement of a row when it is small enough
// and falls back to heuristics otherwise. [Generate] produces the candidate
// index permutations and [Apply] maps one onto a row of node IDs.
package perm

import "slices"

// Seq returns [0, 1, ..., n-1]. For n <= 0 it returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n!, or 1 for n <= 1. It overflows a 64-bit int past 20.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Generate returns the permutations of [0, n) in Heap's order, starting
// with the identity. A positive limit caps the number returned; otherwise
// all n! permutations are produced. Every permutation is its own slice.
//
// For n = 0 the result is one empty permutation.
func Generate(n, limit int) [][]int {
	if n <= 0 {
		return [][]int{{}}
	}

	p := Seq(n)
	state := make([]int, n)

	capacity := Factorial(min(n, 10))
	if limit > 0 {
		capacity = min(capacity, limit)
	}
	result := make([][]int, 0, capacity)
	result = append(result, slices.Clone(p))

	for i := 0; i < n && (limit <= 0 || len(result) < limit); {
		if state[i] < i {
			if i&1 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[state[i]], p[i] = p[i], p[state[i]]
			}
			result = append(result, slices.Clone(p))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return result
}

// Apply returns items rearranged so that position i holds items[p[i]].
// p must be a permutation of [0, len(items)).
func Apply[T any](items []T, p []int) []T {
	out := make([]T, len(p))
	for i, idx := range p {
		out[i] = items[idx]
	}
	return out
}
