package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ContainsAll reports whether every item is in slice.
func ContainsAll[T comparable](slice []T, items ...T) bool {
	for _, item := range items {
		if FindIndex(slice, item) == -1 {
			return false
		}
	}
	return true
}

func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
