package searcher

import (
	"iter"
	"math"
)

// Combinations yields every k-sized subset of items in lexicographic index
// order. The yielded slice is reused between iterations; copy it to keep it.
func Combinations[T any](items []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(items)
		if k < 0 || k > n {
			return
		}
		indices := make([]int, k)
		for i := range indices {
			indices[i] = i
		}
		subset := make([]T, k)
		for {
			for i, idx := range indices {
				subset[i] = items[idx]
			}
			if !yield(subset) {
				return
			}

			// Advance the rightmost index that still has room
			i := k - 1
			for i >= 0 && indices[i] == i+n-k {
				i--
			}
			if i < 0 {
				return
			}
			indices[i]++
			for j := i + 1; j < k; j++ {
				indices[j] = indices[j-1] + 1
			}
		}
	}
}

// Binomial returns C(n, k), the number of subsets Combinations yields. Counts
// too large for an int saturate at math.MaxInt.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		// i divides result*(n-k+i) and i/g shares no factor with result/g,
		// so i/g divides n-k+i
		g := gcd(result, i)
		factor := (n - k + i) / (i / g)
		if result/g > math.MaxInt/factor {
			return math.MaxInt
		}
		result = result / g * factor
	}
	return result
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
