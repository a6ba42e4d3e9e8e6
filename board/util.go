package board

import "golang.org/x/exp/constraints"

func min[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}
