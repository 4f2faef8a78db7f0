// Package maxsubarray locates the contiguous span with the largest sum.
package maxsubarray

import "fmt"

// Strategy selects the algorithm used by Find. Callers pick one explicitly;
// there is no automatic switching.
type Strategy int

const (
	// DivideAndConquer splits the input in halves and merges the best
	// left, right and midpoint-crossing spans.
	DivideAndConquer Strategy = iota
	// Linear keeps the best span ending at each element in a single pass.
	Linear
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case DivideAndConquer:
		return "divide-and-conquer"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// Span is a half-open window [Lo, Hi) together with the sum of its elements.
type Span struct {
	Lo  int
	Hi  int
	Sum float64
}

// Find returns the maximum-sum contiguous span of xs. The empty input yields
// the empty span; otherwise the span holds at least one element, so an
// all-negative input returns its largest element.
func Find(xs []float64, strategy Strategy) (Span, error) {
	if len(xs) == 0 {
		return Span{}, nil
	}
	switch strategy {
	case DivideAndConquer:
		return findRecursive(xs, 0, len(xs)), nil
	case Linear:
		return findLinear(xs), nil
	default:
		return Span{}, fmt.Errorf("unknown strategy %d", strategy)
	}
}

func findRecursive(xs []float64, lo, hi int) Span {
	if hi-lo == 1 {
		return Span{Lo: lo, Hi: hi, Sum: xs[lo]}
	}
	mid := (lo + hi) / 2
	left := findRecursive(xs, lo, mid)
	right := findRecursive(xs, mid, hi)
	cross := findCrossing(xs, lo, mid, hi)
	best := left
	if cross.Sum > best.Sum {
		best = cross
	}
	if right.Sum > best.Sum {
		best = right
	}
	return best
}

// findCrossing joins the best suffix of [lo,mid) with the best prefix of
// [mid,hi). Both halves are non-empty so the crossing span always exists.
func findCrossing(xs []float64, lo, mid, hi int) Span {
	sum := 0.0
	leftSum := xs[mid-1]
	leftLo := mid - 1
	for i := mid - 1; i >= lo; i-- {
		sum += xs[i]
		if sum > leftSum {
			leftSum = sum
			leftLo = i
		}
	}
	sum = 0
	rightSum := xs[mid]
	rightHi := mid + 1
	for i := mid; i < hi; i++ {
		sum += xs[i]
		if sum > rightSum {
			rightSum = sum
			rightHi = i + 1
		}
	}
	return Span{Lo: leftLo, Hi: rightHi, Sum: leftSum + rightSum}
}

func findLinear(xs []float64) Span {
	best := Span{Lo: 0, Hi: 1, Sum: xs[0]}
	curSum := xs[0]
	curLo := 0
	for i := 1; i < len(xs); i++ {
		if curSum < 0 {
			curSum = xs[i]
			curLo = i
		} else {
			curSum += xs[i]
		}
		if curSum > best.Sum {
			best = Span{Lo: curLo, Hi: i + 1, Sum: curSum}
		}
	}
	return best
}

// FindNaive checks every (start, end) pair. Quadratic, kept as the oracle the
// faster strategies are tested against.
func FindNaive(xs []float64) Span {
	if len(xs) == 0 {
		return Span{}
	}
	best := Span{Lo: 0, Hi: 1, Sum: xs[0]}
	for i := range xs {
		sum := 0.0
		for j := i; j < len(xs); j++ {
			sum += xs[j]
			if sum > best.Sum {
				best = Span{Lo: i, Hi: j + 1, Sum: sum}
			}
		}
	}
	return best
}
