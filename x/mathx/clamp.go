package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]; lo must not exceed hi.
func Clamp[T constraints.Integer](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}

func Min[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}
