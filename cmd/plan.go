package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sanjithdevineni/AoA-Project-1/core/planner"
	"github.com/sanjithdevineni/AoA-Project-1/core/route"
	"github.com/sanjithdevineni/AoA-Project-1/pkg/export"
)

var (
	planDest     float64
	planRange    float64
	planStations []float64
	planGains    []float64
	planFile     string
	planFormat   string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the minimum-stop charging plan for a trip",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().Float64Var(&planDest, "dest", 0, "trip distance")
	planCmd.Flags().Float64Var(&planRange, "range", 0, "battery range on a full charge")
	planCmd.Flags().Float64SliceVar(&planStations, "stations", nil, "station positions along the route")
	planCmd.Flags().Float64SliceVar(&planGains, "gains", nil, "per-station range gains, full recharge when omitted")
	planCmd.Flags().StringVar(&planFile, "file", "", "read the request from a JSON file instead of flags")
	planCmd.Flags().StringVar(&planFormat, "format", "text", "output format: text, json or csv")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	req, err := planRequest()
	if err != nil {
		return err
	}
	rt, err := req.ToRoute()
	if err != nil {
		return err
	}
	res := export.FromPlan(req.RequestID, req.Destination, planner.MinStops(rt))

	out := cmd.OutOrStdout()
	switch planFormat {
	case "json":
		return export.WriteJSON(out, res)
	case "csv":
		return export.WriteCSV(out, res)
	case "text":
		printPlan(out, res)
		return nil
	default:
		return fmt.Errorf("unknown format %s", planFormat)
	}
}

func planRequest() (export.Request, error) {
	if planFile != "" {
		data, err := os.ReadFile(planFile)
		if err != nil {
			return export.Request{}, err
		}
		var req export.Request
		if err := json.Unmarshal(data, &req); err != nil {
			return export.Request{}, fmt.Errorf("decode %s: %w", planFile, err)
		}
		return req, nil
	}
	if len(planGains) > 0 && len(planGains) != len(planStations) {
		return export.Request{}, fmt.Errorf("got %d gains for %d stations", len(planGains), len(planStations))
	}
	stations := make([]route.Station, len(planStations))
	for i, p := range planStations {
		stations[i] = route.Station{Position: p}
		if len(planGains) > 0 {
			stations[i].Gain = planGains[i]
		}
	}
	return export.Request{Destination: planDest, Capacity: planRange, Stations: stations}, nil
}

func printPlan(w io.Writer, res export.Result) {
	if !res.Feasible {
		if res.Infeasibility != nil {
			fmt.Fprintf(w, "infeasible: %s between %s and %s\n",
				res.Infeasibility.Reason,
				strconv.FormatFloat(res.Infeasibility.GapFrom, 'f', -1, 64),
				strconv.FormatFloat(res.Infeasibility.GapTo, 'f', -1, 64))
			return
		}
		fmt.Fprintln(w, "infeasible")
		return
	}
	if res.StopCount == 0 {
		fmt.Fprintln(w, "no charging stop needed")
		return
	}
	fmt.Fprintf(w, "stops: %d\n", res.StopCount)
	for i, p := range res.Stops {
		fmt.Fprintf(w, "%d: %s\n", i+1, strconv.FormatFloat(p, 'f', -1, 64))
	}
}
