package appendix

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListingBlock(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.go")
	if err := os.WriteFile(src, []byte("package main\n\nfunc main() {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := listingBlock(Listing{Source: src, Caption: "Entry point", Label: "lst:main"})
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	want := "\\begin{lstlisting}[caption={Entry point},label={lst:main}]\npackage main\n\nfunc main() {}\n\\end{lstlisting}\n"
	if got != want {
		t.Fatalf("unexpected block:\n%s", got)
	}
}

func TestTableBlockMissingCSV(t *testing.T) {
	got, err := tableBlock(Table{CSV: filepath.Join(t.TempDir(), "absent.csv"), Label: "tab:x"}, 5)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if got != "% data missing for tab:x\n" {
		t.Fatalf("unexpected guard: %q", got)
	}
}

func TestTableBlockPreviewLimit(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	content := "n,mean_ms\n"
	for i := 0; i < 8; i++ {
		content += "1,2\n"
	}
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := tableBlock(Table{CSV: csvPath, Caption: "Data", Label: "tab:data"}, 5)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.Contains(got, " n & mean_ms \\\\") {
		t.Fatalf("header missing:\n%s", got)
	}
	if rows := strings.Count(got, " 1 & 2 \\\\"); rows != 5 {
		t.Fatalf("expected 5 preview rows got %d", rows)
	}
	if !strings.Contains(got, "\\caption{Data}") || !strings.Contains(got, "\\label{tab:data}") {
		t.Fatalf("caption or label missing:\n%s", got)
	}
}

func TestFigureBlocks(t *testing.T) {
	got := figureBlocks([]Figure{{Path: "figures/a.pdf", Caption: "A", Label: "fig:a"}})
	want := "\\begin{figure}[ht]\n\\centering\n\\includegraphics[width=\\linewidth]{figures/a.pdf}\n\\caption{A}\n\\label{fig:a}\n\\end{figure}\n"
	if got != want {
		t.Fatalf("unexpected figs:\n%s", got)
	}
}

func TestExport(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(srcDir, "appendix")
	src := filepath.Join(srcDir, "algo.go")
	if err := os.WriteFile(src, []byte("package algo\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	listings := []Listing{{Source: src, OutName: "code_algo.tex", Caption: "Algo", Label: "lst:algo"}}
	tables := []Table{{CSV: filepath.Join(srcDir, "missing.csv"), Caption: "T", Label: "tab:t"}}
	figures := []Figure{{Path: "figures/f.pdf", Caption: "F", Label: "fig:f"}}

	if err := New(outDir, 0).Export(listings, tables, figures); err != nil {
		t.Fatalf("export: %v", err)
	}

	code, err := os.ReadFile(filepath.Join(outDir, "code_algo.tex"))
	if err != nil {
		t.Fatalf("read code: %v", err)
	}
	if !strings.Contains(string(code), "package algo") {
		t.Fatalf("listing content missing")
	}

	tablesTex, err := os.ReadFile(filepath.Join(outDir, "tables.tex"))
	if err != nil {
		t.Fatalf("read tables: %v", err)
	}
	if !strings.HasPrefix(string(tablesTex), "% Run `evplan bench`") {
		t.Fatalf("tables preamble missing:\n%s", tablesTex)
	}
	if !strings.Contains(string(tablesTex), "% data missing for tab:t") {
		t.Fatalf("missing-data guard absent:\n%s", tablesTex)
	}

	figsTex, err := os.ReadFile(filepath.Join(outDir, "figs.tex"))
	if err != nil {
		t.Fatalf("read figs: %v", err)
	}
	if !strings.Contains(string(figsTex), "\\includegraphics[width=\\linewidth]{figures/f.pdf}") {
		t.Fatalf("figure include missing:\n%s", figsTex)
	}
}

func TestDefaultsCoverResultFiles(t *testing.T) {
	listings, tables, figures := Defaults(".", "results")
	if len(listings) != 3 || len(tables) != 3 || len(figures) != 3 {
		t.Fatalf("unexpected defaults %d/%d/%d", len(listings), len(tables), len(figures))
	}
	if tables[0].CSV != filepath.Join("results", "times_sorted.csv") {
		t.Fatalf("unexpected table csv %s", tables[0].CSV)
	}
}
