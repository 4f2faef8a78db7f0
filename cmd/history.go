package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sanjithdevineni/AoA-Project-1/core/planlog"
)

var (
	historyRequestID string
	historySource    string
	historySince     time.Duration
	historyFormat    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded planning decisions",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyRequestID, "request-id", "", "filter by request id")
	historyCmd.Flags().StringVar(&historySource, "source", "", "filter by request origin")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "only records newer than this age")
	historyCmd.Flags().StringVar(&historyFormat, "format", "text", "output format: text or json")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := planlog.Open(cfg.Logging.Backend, cfg.Logging.Path)
	if err != nil {
		return fmt.Errorf("open plan log: %w", err)
	}
	defer func() { _ = store.Close() }()

	q := planlog.Query{RequestID: historyRequestID, Source: historySource}
	if historySince > 0 {
		q.Start = time.Now().Add(-historySince)
	}
	recs, err := store.Query(cmd.Context(), q)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch historyFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "text":
		for _, r := range recs {
			fmt.Fprintf(out, "%s %s %s feasible=%t stops=%d\n",
				r.Timestamp.Format(time.RFC3339), r.Source, r.Request.RequestID,
				r.Result.Feasible, r.Result.StopCount)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %s", historyFormat)
	}
}
