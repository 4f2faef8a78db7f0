package bench

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the timing trials of one instance size.
type Summary struct {
	Size     int
	MeanMS   float64
	StdDevMS float64
}

// Fit is a least-squares scale fit of a reference curve through the origin.
type Fit struct {
	Model  string
	Coeff  float64
	RMSEMS float64
}

func summarize(size int, ms []float64) Summary {
	s := Summary{Size: size, MeanMS: stat.Mean(ms, nil)}
	if len(ms) > 1 {
		s.StdDevMS = stat.StdDev(ms, nil)
	}
	return s
}

// fitOrigin fits mean runtimes against the reference curve xs by least
// squares through the origin.
func fitOrigin(model string, xs, ys []float64) Fit {
	_, beta := stat.LinearRegression(xs, ys, nil, true)
	var se float64
	for i := range xs {
		d := ys[i] - beta*xs[i]
		se += d * d
	}
	return Fit{Model: model, Coeff: beta, RMSEMS: math.Sqrt(se / float64(len(xs)))}
}

func linearCurve(sizes []int) []float64 {
	xs := make([]float64, len(sizes))
	for i, n := range sizes {
		xs[i] = float64(n)
	}
	return xs
}

func nLogNCurve(sizes []int) []float64 {
	xs := make([]float64, len(sizes))
	for i, n := range sizes {
		xs[i] = float64(n) * math.Log2(float64(n))
	}
	return xs
}
