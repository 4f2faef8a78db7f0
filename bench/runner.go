// Package bench times the planner over synthetic station catalogs and writes
// the results as CSV.
package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	coremetrics "github.com/sanjithdevineni/AoA-Project-1/core/metrics"
	"github.com/sanjithdevineni/AoA-Project-1/core/planner"
	"github.com/sanjithdevineni/AoA-Project-1/core/route"
	"github.com/sanjithdevineni/AoA-Project-1/infra/logger"
)

// SweepPoint records the stop count for one battery range of the sweep.
type SweepPoint struct {
	Range float64
	Stops int
}

// Report carries the aggregated results of a full benchmark run.
type Report struct {
	Sorted      []Summary
	Unsorted    []Summary
	Sweep       []SweepPoint
	SortedFit   Fit
	UnsortedFit Fit
}

// Runner executes the timing suites and the stops-vs-range sweep.
type Runner struct {
	cfg Config
	rec coremetrics.BenchRecorder
	log logger.Logger
}

// New creates a Runner. rec may be nil to skip sample export.
func New(cfg Config, rec coremetrics.BenchRecorder) *Runner {
	return &Runner{cfg: cfg, rec: rec, log: logger.New("bench")}
}

// Run executes all suites and writes the CSV files under cfg.OutDir.
//
// The sorted suite times planning alone over a prebuilt catalog. The unsorted
// suite shuffles the stations and times catalog construction plus planning.
// The sweep plans one fixed instance across a ladder of battery ranges, from
// the widest station gap up to the full trip distance.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rng := rand.New(rand.NewSource(r.cfg.Seed))
	rep := &Report{}
	var samples []coremetrics.BenchSample

	for _, n := range r.cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		capacity := r.cfg.SpacingFactor * r.cfg.Destination / float64(n+1)
		positions := Positions(rng, n, r.cfg.Destination)

		sortedMS, ss, err := r.timeSorted(n, capacity, positions)
		if err != nil {
			return nil, err
		}
		samples = append(samples, ss...)
		rep.Sorted = append(rep.Sorted, summarize(n, sortedMS))

		unsortedMS, us, err := r.timeUnsorted(rng, n, capacity, positions)
		if err != nil {
			return nil, err
		}
		samples = append(samples, us...)
		rep.Unsorted = append(rep.Unsorted, summarize(n, unsortedMS))

		r.log.Infof("n=%d sorted %.3fms unsorted %.3fms", n,
			rep.Sorted[len(rep.Sorted)-1].MeanMS, rep.Unsorted[len(rep.Unsorted)-1].MeanMS)
	}

	sweep, err := r.sweep(ctx, rng)
	if err != nil {
		return nil, err
	}
	rep.Sweep = sweep

	rep.SortedFit = fitOrigin("c*n", linearCurve(r.cfg.Sizes), means(rep.Sorted))
	rep.UnsortedFit = fitOrigin("c*n*log2(n)", nLogNCurve(r.cfg.Sizes), means(rep.Unsorted))
	r.log.Infof("fit %s coeff=%.3g rmse=%.3gms", rep.SortedFit.Model, rep.SortedFit.Coeff, rep.SortedFit.RMSEMS)
	r.log.Infof("fit %s coeff=%.3g rmse=%.3gms", rep.UnsortedFit.Model, rep.UnsortedFit.Coeff, rep.UnsortedFit.RMSEMS)

	if r.rec != nil {
		if err := r.rec.RecordBenchSamples(samples); err != nil {
			r.log.Errorf("record samples: %v", err)
		}
	}
	if err := WriteCSVs(r.cfg.OutDir, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (r *Runner) timeSorted(n int, capacity float64, positions []float64) ([]float64, []coremetrics.BenchSample, error) {
	rt, err := route.NewUniform(r.cfg.Destination, capacity, positions)
	if err != nil {
		return nil, nil, fmt.Errorf("build instance n=%d: %w", n, err)
	}
	for i := 0; i < r.cfg.Warmup; i++ {
		planner.MinStops(rt)
	}
	ms := make([]float64, 0, r.cfg.Trials)
	samples := make([]coremetrics.BenchSample, 0, r.cfg.Trials)
	for trial := 0; trial < r.cfg.Trials; trial++ {
		start := time.Now()
		plan := planner.MinStops(rt)
		d := time.Since(start)
		if !plan.Feasible {
			return nil, nil, fmt.Errorf("instance n=%d unexpectedly infeasible", n)
		}
		ms = append(ms, float64(d)/float64(time.Millisecond))
		samples = append(samples, coremetrics.BenchSample{
			Suite: "sorted", Size: n, Trial: trial, Duration: d, Stops: plan.StopCount(), Time: time.Now(),
		})
	}
	return ms, samples, nil
}

func (r *Runner) timeUnsorted(rng *rand.Rand, n int, capacity float64, positions []float64) ([]float64, []coremetrics.BenchSample, error) {
	ms := make([]float64, 0, r.cfg.Trials)
	samples := make([]coremetrics.BenchSample, 0, r.cfg.Trials)
	for trial := 0; trial < r.cfg.Trials; trial++ {
		shuffled := Shuffled(rng, positions)
		start := time.Now()
		rt, err := route.NewUniform(r.cfg.Destination, capacity, shuffled)
		if err != nil {
			return nil, nil, fmt.Errorf("build instance n=%d: %w", n, err)
		}
		plan := planner.MinStops(rt)
		d := time.Since(start)
		ms = append(ms, float64(d)/float64(time.Millisecond))
		samples = append(samples, coremetrics.BenchSample{
			Suite: "unsorted", Size: n, Trial: trial, Duration: d, Stops: plan.StopCount(), Time: time.Now(),
		})
	}
	return ms, samples, nil
}

func (r *Runner) sweep(ctx context.Context, rng *rand.Rand) ([]SweepPoint, error) {
	n := r.cfg.SweepSize
	positions := Positions(rng, n, r.cfg.Destination)
	probe, err := route.NewUniform(r.cfg.Destination, r.cfg.Destination, positions)
	if err != nil {
		return nil, fmt.Errorf("build sweep instance: %w", err)
	}
	lo := probe.MaxGap().Width()
	hi := r.cfg.Destination
	points := make([]SweepPoint, 0, r.cfg.SweepSteps)
	for i := 0; i < r.cfg.SweepSteps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		capacity := lo + (hi-lo)*float64(i)/float64(r.cfg.SweepSteps-1)
		rt, err := route.NewUniform(r.cfg.Destination, capacity, positions)
		if err != nil {
			return nil, fmt.Errorf("build sweep instance: %w", err)
		}
		plan := planner.MinStops(rt)
		if !plan.Feasible {
			return nil, fmt.Errorf("sweep range %g unexpectedly infeasible", capacity)
		}
		points = append(points, SweepPoint{Range: capacity, Stops: plan.StopCount()})
	}
	return points, nil
}

func means(ss []Summary) []float64 {
	out := make([]float64, len(ss))
	for i, s := range ss {
		out[i] = s.MeanMS
	}
	return out
}
