// Package maths provides small generic numeric helpers.
package maths

import "golang.org/x/exp/constraints"

// Min returns the smallest of the two values given as input.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the largest of the two values given as input.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}
