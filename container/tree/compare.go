package tree

import "golang.org/x/exp/constraints"

// compare returns
//  -1 if a < b
//   0 if a == b
//   1 if a > b
func compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
