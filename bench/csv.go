package bench

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSVs writes the report to times_sorted.csv, times_unsorted.csv and
// stops_vs_range.csv under dir.
func WriteCSVs(dir string, rep *Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeTimes(filepath.Join(dir, "times_sorted.csv"), rep.Sorted); err != nil {
		return err
	}
	if err := writeTimes(filepath.Join(dir, "times_unsorted.csv"), rep.Unsorted); err != nil {
		return err
	}
	return writeSweep(filepath.Join(dir, "stops_vs_range.csv"), rep.Sweep)
}

func writeTimes(path string, summaries []Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"n", "mean_ms", "stddev_ms"}); err != nil {
		return err
	}
	for _, s := range summaries {
		rec := []string{
			strconv.Itoa(s.Size),
			strconv.FormatFloat(s.MeanMS, 'f', 6, 64),
			strconv.FormatFloat(s.StdDevMS, 'f', 6, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeSweep(path string, points []SweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"range", "stops"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p.Range, 'f', 3, 64),
			strconv.Itoa(p.Stops),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
