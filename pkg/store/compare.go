package store

import (
	"strings"

	"golang.org/x/exp/constraints"
)

type CompareFuncG[K any] func(lhs, rhs K) int

type LessFunc[K any] func(k1, k2 K) bool

func IntegerCompare[K constraints.Integer](l, r K) int {
	if l < r {
		return -1
	} else if l == r {
		return 0
	} else {
		return 1
	}
}

func StringCompare(lhs, rhs string) int {
	return strings.Compare(lhs, rhs)
}
