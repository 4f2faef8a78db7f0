package bench

import (
	"context"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	coremetrics "github.com/sanjithdevineni/AoA-Project-1/core/metrics"
	"github.com/sanjithdevineni/AoA-Project-1/core/route"
)

func TestPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pos := Positions(rng, 500, 1000)
	if len(pos) != 500 {
		t.Fatalf("expected 500 positions got %d", len(pos))
	}
	for i, p := range pos {
		if p <= 0 || p >= 1000 {
			t.Fatalf("position %d out of range: %v", i, p)
		}
		if i > 0 && pos[i-1] >= p {
			t.Fatalf("positions not strictly increasing at %d: %v >= %v", i, pos[i-1], p)
		}
	}
	capacity := 2.5 * 1000 / float64(501)
	rt, err := route.NewUniform(1000, capacity, pos)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if ok, gap := rt.Feasible(); !ok {
		t.Fatalf("expected feasible instance, widest gap %v", gap.Width())
	}
}

func TestShuffledPreservesElements(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	orig := Positions(rng, 100, 1000)
	shuffled := Shuffled(rng, orig)
	if len(shuffled) != len(orig) {
		t.Fatalf("length changed")
	}
	back := make([]float64, len(shuffled))
	copy(back, shuffled)
	sort.Float64s(back)
	for i := range orig {
		if back[i] != orig[i] {
			t.Fatalf("element set changed at %d", i)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := summarize(10, []float64{1, 2, 3})
	if s.Size != 10 || s.MeanMS != 2 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if math.Abs(s.StdDevMS-1) > 1e-12 {
		t.Fatalf("unexpected stddev %v", s.StdDevMS)
	}
}

func TestFitOriginExact(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	ys := []float64{3, 6, 12, 24}
	fit := fitOrigin("c*n", xs, ys)
	if math.Abs(fit.Coeff-3) > 1e-9 {
		t.Fatalf("expected coeff 3 got %v", fit.Coeff)
	}
	if fit.RMSEMS > 1e-9 {
		t.Fatalf("expected zero residual got %v", fit.RMSEMS)
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	if len(cfg.Sizes) == 0 || cfg.Trials != 5 || cfg.Seed != 42 || cfg.OutDir != "results" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Sizes: []int{-1}, SpacingFactor: 2}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for negative size")
	}
	cfg = Config{Sizes: []int{10}, SpacingFactor: 0.5}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for tight spacing factor")
	}
}

type captureRecorder struct {
	samples []coremetrics.BenchSample
}

func (c *captureRecorder) RecordBenchSamples(ss []coremetrics.BenchSample) error {
	c.samples = append(c.samples, ss...)
	return nil
}

func TestRunnerRun(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Sizes:         []int{50, 100},
		Trials:        2,
		Warmup:        1,
		Seed:          7,
		Destination:   10000,
		SpacingFactor: 2.5,
		SweepSize:     50,
		SweepSteps:    5,
		OutDir:        dir,
	}
	rec := &captureRecorder{}
	rep, err := New(cfg, rec).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(rep.Sorted) != 2 || len(rep.Unsorted) != 2 {
		t.Fatalf("expected summaries per size, got %d/%d", len(rep.Sorted), len(rep.Unsorted))
	}
	if len(rep.Sweep) != 5 {
		t.Fatalf("expected 5 sweep points got %d", len(rep.Sweep))
	}
	for i := 1; i < len(rep.Sweep); i++ {
		if rep.Sweep[i].Stops > rep.Sweep[i-1].Stops {
			t.Fatalf("stops increased with range at %d: %+v", i, rep.Sweep)
		}
	}
	if last := rep.Sweep[len(rep.Sweep)-1]; last.Stops != 0 {
		t.Fatalf("full-range sweep point should need no stop, got %d", last.Stops)
	}
	if got := len(rec.samples); got != 8 {
		t.Fatalf("expected 8 samples got %d", got)
	}
	if rep.SortedFit.Coeff <= 0 || rep.UnsortedFit.Coeff <= 0 {
		t.Fatalf("expected positive fit coefficients: %+v %+v", rep.SortedFit, rep.UnsortedFit)
	}

	for name, rows := range map[string]int{
		"times_sorted.csv":   3,
		"times_unsorted.csv": 3,
		"stops_vs_range.csv": 6,
	} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != rows {
			t.Fatalf("%s: expected %d lines got %d", name, rows, len(lines))
		}
	}
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := Config{Sizes: []int{50}, Trials: 1, Warmup: 1, Seed: 1, Destination: 1000, SpacingFactor: 2.5, SweepSize: 10, SweepSteps: 3, OutDir: t.TempDir()}
	if _, err := New(cfg, nil).Run(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
