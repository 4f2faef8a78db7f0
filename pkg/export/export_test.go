package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sanjithdevineni/AoA-Project-1/core/planner"
	"github.com/sanjithdevineni/AoA-Project-1/core/route"
)

func TestFromPlan(t *testing.T) {
	p := planner.Plan{
		Feasible: true,
		Stations: []route.Station{{Position: 200, Gain: 400}},
	}
	res := FromPlan("req-1", 400, p)
	if !res.Feasible || res.StopCount != 1 || res.TotalDistance != 400 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(res.Stops) != 1 || res.Stops[0] != 200 {
		t.Fatalf("unexpected stops %v", res.Stops)
	}
	if res.Infeasibility != nil {
		t.Fatalf("expected nil infeasibility")
	}
}

func TestFromPlanInfeasible(t *testing.T) {
	p := planner.Plan{
		Feasible:      false,
		Infeasibility: &planner.Infeasibility{Reason: "leg wider than the battery range", GapFrom: 100, GapTo: 300},
	}
	res := FromPlan("", 400, p)
	if res.Feasible || res.Infeasibility == nil {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Infeasibility.GapFrom != 100 || res.Infeasibility.GapTo != 300 {
		t.Fatalf("gap not mirrored: %+v", res.Infeasibility)
	}
}

func TestRequestToRoute(t *testing.T) {
	req := Request{Destination: 400, Capacity: 200, Stations: []route.Station{{Position: 100}, {Position: 300}}}
	r, err := req.ToRoute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Stations) != 2 {
		t.Fatalf("unexpected stations %v", r.Stations)
	}
	if _, err := (Request{Destination: -1, Capacity: 200}).ToRoute(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	res := Result{RequestID: "r1", Feasible: true, Stops: []float64{35, 70}, StopCount: 2, TotalDistance: 100}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, res); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.RequestID != "r1" || got.StopCount != 2 || len(got.Stops) != 2 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestWriteCSV(t *testing.T) {
	res := Result{Stops: []float64{35, 70.5}}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "stop,position\n1,35\n2,70.5\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv:\n%s", buf.String())
	}
}
