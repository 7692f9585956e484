package combinat

import (
	"errors"
	"math/big"
)

// ErrNonPositive is returned by SubsetSums when a candidate value is ≤ 0.
var ErrNonPositive = errors.New("combinat: subset-sum values must be strictly positive")

// Factorial returns n! as a big integer. Factorial of n ≤ 0 is 1.
func Factorial(n int) *big.Int {
	out := big.NewInt(1)
	for i := 2; i <= n; i++ {
		out.Mul(out, big.NewInt(int64(i)))
	}

	return out
}

// Binomial returns n choose k, or 0 when k is outside [0, n].
func Binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}

// SubsetSums returns every non-decreasing selection (by index, with
// repetition) of values whose sum equals target. Selections are produced
// depth-first: {2,4} to 6 yields [2 2 2] then [2 4].
func SubsetSums(target int, values []int) ([][]int, error) {
	for _, v := range values {
		if v <= 0 {
			return nil, ErrNonPositive
		}
	}

	var (
		out  [][]int
		pick []int
	)
	var extend func(sum, from int)
	extend = func(sum, from int) {
		for i := from; i < len(values); i++ {
			next := sum + values[i]
			switch {
			case next == target:
				sel := make([]int, len(pick)+1)
				copy(sel, pick)
				sel[len(pick)] = values[i]
				out = append(out, sel)
			case next < target:
				pick = append(pick, values[i])
				extend(next, i)
				pick = pick[:len(pick)-1]
			}
		}
	}
	extend(0, 0)

	return out, nil
}

// NextPermutation rearranges xs into its lexicographic successor and
// reports true, or leaves xs untouched and reports false when xs is already
// the last (non-increasing) arrangement.
func NextPermutation(xs []int) bool {
	i := len(xs) - 2
	for i >= 0 && xs[i] >= xs[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(xs) - 1
	for xs[j] <= xs[i] {
		j--
	}
	xs[i], xs[j] = xs[j], xs[i]
	for l, r := i+1, len(xs)-1; l < r; l, r = l+1, r-1 {
		xs[l], xs[r] = xs[r], xs[l]
	}

	return true
}
