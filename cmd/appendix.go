package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sanjithdevineni/AoA-Project-1/pkg/appendix"
)

var (
	appendixSrc     string
	appendixResults string
	appendixOut     string
	appendixRows    int
)

var appendixCmd = &cobra.Command{
	Use:   "appendix",
	Short: "Generate the LaTeX appendix assets",
	RunE:  runAppendix,
}

func init() {
	appendixCmd.Flags().StringVar(&appendixSrc, "src", ".", "repository root holding the listed sources")
	appendixCmd.Flags().StringVar(&appendixResults, "results", "", "directory with benchmark CSVs, defaults to the bench output directory")
	appendixCmd.Flags().StringVar(&appendixOut, "out", "appendix", "output directory")
	appendixCmd.Flags().IntVar(&appendixRows, "rows", 0, "table preview rows")
	rootCmd.AddCommand(appendixCmd)
}

func runAppendix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	results := appendixResults
	if results == "" {
		results = cfg.Bench.OutDir
	}
	listings, tables, figures := appendix.Defaults(appendixSrc, results)
	return appendix.New(appendixOut, appendixRows).Export(listings, tables, figures)
}
