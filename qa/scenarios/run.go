package scenarios

import (
	"testing"

	"github.com/sanjithdevineni/AoA-Project-1/core/planner"
	"github.com/sanjithdevineni/AoA-Project-1/pkg/export"
)

// RunScenario plans the scenario's route and fails the test when the outcome
// differs from the expectation.
func RunScenario(t *testing.T, sc *Scenario) {
	rt, err := sc.Route()
	if err != nil {
		t.Fatalf("scenario %s route: %v", sc.Name, err)
	}

	plan := planner.MinStops(rt)
	if plan.Feasible != sc.Expected.Feasible {
		t.Fatalf("scenario %s expected feasible=%t, got %t", sc.Name, sc.Expected.Feasible, plan.Feasible)
	}
	if !plan.Feasible {
		if plan.Infeasibility == nil {
			t.Fatalf("scenario %s infeasible without a reported gap", sc.Name)
		}
		if len(sc.Expected.Stops) != 0 {
			t.Fatalf("scenario %s expects stops but is infeasible", sc.Name)
		}
		return
	}

	if plan.StopCount() != len(sc.Expected.Stops) {
		t.Fatalf("scenario %s expected %d stops, got %d", sc.Name, len(sc.Expected.Stops), plan.StopCount())
	}
	for i, s := range plan.Stations {
		if s.Position != sc.Expected.Stops[i] {
			t.Errorf("scenario %s stop %d at %v, want %v", sc.Name, i+1, s.Position, sc.Expected.Stops[i])
		}
	}

	res := export.FromPlan("", sc.Destination, plan)
	if res.StopCount != plan.StopCount() {
		t.Errorf("scenario %s result stop_count=%d, want %d", sc.Name, res.StopCount, plan.StopCount())
	}
	if res.TotalDistance != sc.Destination {
		t.Errorf("scenario %s result total_distance=%v, want %v", sc.Name, res.TotalDistance, sc.Destination)
	}
}
