// Package appendix renders LaTeX appendix assets: source listings, result
// tables and figure include blocks.
package appendix

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPreviewRows limits how many CSV rows a table block embeds.
const DefaultPreviewRows = 5

// Listing embeds a source file as an lstlisting block.
type Listing struct {
	Source  string
	OutName string
	Caption string
	Label   string
}

// Table renders a preview of a result CSV as a tabular block.
type Table struct {
	CSV     string
	Caption string
	Label   string
}

// Figure references a rendered figure file.
type Figure struct {
	Path    string
	Caption string
	Label   string
}

// Exporter writes appendix assets under a single output directory.
type Exporter struct {
	outDir      string
	previewRows int
}

// New creates an Exporter writing to outDir. previewRows <= 0 selects
// DefaultPreviewRows.
func New(outDir string, previewRows int) *Exporter {
	if previewRows <= 0 {
		previewRows = DefaultPreviewRows
	}
	return &Exporter{outDir: outDir, previewRows: previewRows}
}

// Export writes one code_*.tex file per listing plus tables.tex and figs.tex.
// A table whose CSV is absent renders as a data-missing comment instead of
// failing the whole export.
func (e *Exporter) Export(listings []Listing, tables []Table, figures []Figure) error {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return err
	}
	for _, l := range listings {
		block, err := listingBlock(l)
		if err != nil {
			return fmt.Errorf("listing %s: %w", l.OutName, err)
		}
		if err := os.WriteFile(filepath.Join(e.outDir, l.OutName), []byte(block), 0o644); err != nil {
			return err
		}
	}

	blocks := make([]string, 0, len(tables)+1)
	blocks = append(blocks, "% Run `evplan bench` before including these tables.")
	for _, t := range tables {
		block, err := tableBlock(t, e.previewRows)
		if err != nil {
			return fmt.Errorf("table %s: %w", t.Label, err)
		}
		blocks = append(blocks, block)
	}
	if err := os.WriteFile(filepath.Join(e.outDir, "tables.tex"), []byte(strings.Join(blocks, "\n")), 0o644); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(e.outDir, "figs.tex"), []byte(figureBlocks(figures)), 0o644)
}

func listingBlock(l Listing) (string, error) {
	code, err := os.ReadFile(l.Source)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{lstlisting}[caption={%s},label={%s}]\n", l.Caption, l.Label)
	b.Write(bytes.TrimRight(code, "\n"))
	b.WriteString("\n\\end{lstlisting}\n")
	return b.String(), nil
}

// csvPreview reads the header and up to limit rows. A missing file yields an
// empty header.
func csvPreview(path string, limit int) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	var rows [][]string
	for len(rows) < limit {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func tableBlock(t Table, limit int) (string, error) {
	header, rows, err := csvPreview(t.CSV, limit)
	if err != nil {
		return "", err
	}
	if len(header) == 0 {
		return fmt.Sprintf("%% data missing for %s\n", t.Label), nil
	}
	alignment := strings.TrimSuffix(strings.Repeat("r ", len(header)), " ")
	lines := []string{
		"\\begin{table}[ht]",
		"\\centering",
		fmt.Sprintf("\\begin{tabular}{%s}", alignment),
		" " + strings.Join(header, " & ") + " \\\\",
		" \\hline",
	}
	for _, row := range rows {
		lines = append(lines, " "+strings.Join(row, " & ")+" \\\\")
	}
	lines = append(lines,
		"\\end{tabular}",
		fmt.Sprintf("\\caption{%s}", t.Caption),
		fmt.Sprintf("\\label{%s}", t.Label),
		"\\end{table}",
		"",
	)
	return strings.Join(lines, "\n"), nil
}

func figureBlocks(figures []Figure) string {
	var lines []string
	for _, f := range figures {
		lines = append(lines,
			"\\begin{figure}[ht]",
			"\\centering",
			fmt.Sprintf("\\includegraphics[width=\\linewidth]{%s}", f.Path),
			fmt.Sprintf("\\caption{%s}", f.Caption),
			fmt.Sprintf("\\label{%s}", f.Label),
			"\\end{figure}",
			"",
		)
	}
	return strings.Join(lines, "\n")
}

// Defaults returns the canonical asset set: the planner and oracle sources,
// the benchmark harness, the three result tables and the three figures.
func Defaults(srcDir, resultsDir string) ([]Listing, []Table, []Figure) {
	listings := []Listing{
		{
			Source:  filepath.Join(srcDir, "core", "planner", "planner.go"),
			OutName: "code_planner.tex",
			Caption: "Greedy charging planner implementation",
			Label:   "lst:planner",
		},
		{
			Source:  filepath.Join(srcDir, "core", "planner", "oracle.go"),
			OutName: "code_oracle.tex",
			Caption: "Dynamic programming baseline for validation",
			Label:   "lst:oracle",
		},
		{
			Source:  filepath.Join(srcDir, "bench", "runner.go"),
			OutName: "code_bench.tex",
			Caption: "Benchmark harness",
			Label:   "lst:bench",
		},
	}
	tables := []Table{
		{
			CSV:     filepath.Join(resultsDir, "times_sorted.csv"),
			Caption: "Runtime results for presorted inputs",
			Label:   "tab:runtime-sorted",
		},
		{
			CSV:     filepath.Join(resultsDir, "times_unsorted.csv"),
			Caption: "Runtime results for unsorted inputs",
			Label:   "tab:runtime-unsorted",
		},
		{
			CSV:     filepath.Join(resultsDir, "stops_vs_range.csv"),
			Caption: "Stops as a function of vehicle range",
			Label:   "tab:stops-vs-range",
		},
	}
	figures := []Figure{
		{
			Path:    "figures/runtime_vs_n_sorted.pdf",
			Caption: "Measured runtime for presorted inputs with a reference $O(n)$ curve.",
			Label:   "fig:runtime-sorted",
		},
		{
			Path:    "figures/runtime_vs_n_unsorted.pdf",
			Caption: "Measured runtime including sorting with a reference $O(n \\log n)$ curve.",
			Label:   "fig:runtime-unsorted",
		},
		{
			Path:    "figures/stops_vs_range.pdf",
			Caption: "Charging stops required as the vehicle range varies.",
			Label:   "fig:stops-vs-range",
		},
	}
	return listings, tables, figures
}
