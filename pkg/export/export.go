// Package export defines the wire format for planning requests and results
// and writes results as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/sanjithdevineni/AoA-Project-1/core/planner"
	"github.com/sanjithdevineni/AoA-Project-1/core/route"
)

// Request describes a trip to plan. Stations with a zero gain grant a full
// recharge.
type Request struct {
	RequestID   string          `json:"request_id,omitempty"`
	Destination float64         `json:"destination"`
	Capacity    float64         `json:"capacity"`
	Stations    []route.Station `json:"stations"`
}

// ToRoute validates the request and builds the route it describes.
func (r Request) ToRoute() (*route.Route, error) {
	return route.New(r.Destination, r.Capacity, r.Stations)
}

// Infeasibility reports the stretch of road no plan can cross.
type Infeasibility struct {
	Reason  string  `json:"reason"`
	GapFrom float64 `json:"gap_from"`
	GapTo   float64 `json:"gap_to"`
}

// Result is the wire form of a computed plan.
type Result struct {
	RequestID     string         `json:"request_id,omitempty"`
	Feasible      bool           `json:"feasible"`
	Stops         []float64      `json:"stops"`
	StopCount     int            `json:"stop_count"`
	TotalDistance float64        `json:"total_distance"`
	Infeasibility *Infeasibility `json:"infeasibility,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// FromPlan converts a plan into its wire form.
func FromPlan(requestID string, destination float64, p planner.Plan) Result {
	res := Result{
		RequestID:     requestID,
		Feasible:      p.Feasible,
		Stops:         make([]float64, 0, len(p.Stations)),
		StopCount:     p.StopCount(),
		TotalDistance: destination,
	}
	for _, s := range p.Stations {
		res.Stops = append(res.Stops, s.Position)
	}
	if p.Infeasibility != nil {
		res.Infeasibility = &Infeasibility{
			Reason:  p.Infeasibility.Reason,
			GapFrom: p.Infeasibility.GapFrom,
			GapTo:   p.Infeasibility.GapTo,
		}
	}
	return res
}

// Errorf builds a Result carrying only an error message, used when the
// request itself is invalid.
func Errorf(requestID, msg string) Result {
	return Result{RequestID: requestID, Stops: []float64{}, Error: msg}
}

// WriteJSON writes the plan result to w in JSON format.
func WriteJSON(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	return enc.Encode(res)
}

// WriteCSV writes the charging stops to w in CSV format.
func WriteCSV(w io.Writer, res Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"stop", "position"}); err != nil {
		return err
	}
	for i, pos := range res.Stops {
		rec := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(pos, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
