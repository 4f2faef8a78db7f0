// Package planner computes minimum-stop charging plans over a station catalog.
package planner

import (
	"container/heap"
	"sort"

	"github.com/sanjithdevineni/AoA-Project-1/core/route"
)

// Plan is the outcome of planning a trip: either a feasible sequence of
// charging stops ordered by position, or the reason no sequence exists.
type Plan struct {
	Feasible      bool
	Stations      []route.Station
	Infeasibility *Infeasibility // nil when Feasible
}

// StopCount returns the number of charging stops in the plan.
func (p Plan) StopCount() int { return len(p.Stations) }

// Infeasibility pinpoints the stretch of road that makes a trip impossible.
type Infeasibility struct {
	Reason  string
	GapFrom float64
	GapTo   float64
}

// MinStops computes a charging plan with the fewest stops for the route.
//
// A trip shorter than the battery range needs no stop at all. Otherwise the
// route is first checked against its widest station gap and then planned
// lazily: the vehicle drives as far as it can and, whenever the tank would run
// dry, retroactively charges at the best station already passed. For routes
// where every station grants a full recharge the result is exactly optimal.
// With reduced per-station gains the stop choice is a greedy heuristic, but
// feasibility is still decided exactly.
//
// The route is never mutated and the same route always yields the same plan.
func MinStops(r *route.Route) Plan {
	if r.Capacity >= r.Destination {
		return Plan{Feasible: true}
	}
	if ok, g := r.Feasible(); !ok {
		return Plan{Infeasibility: &Infeasibility{
			Reason:  "leg wider than the battery range",
			GapFrom: g.From,
			GapTo:   g.To,
		}}
	}
	return greedy(r)
}

func greedy(r *route.Route) Plan {
	uniform := r.Uniform()
	h := make(stationHeap, 0, len(r.Stations))
	chosen := make([]route.Station, 0, 8)
	tank := r.Capacity
	prev := 0.0
	n := len(r.Stations)
	for i := 0; i <= n; i++ {
		q := r.Destination
		if i < n {
			q = r.Stations[i].Position
		}
		tank -= q - prev
		for tank < 0 {
			if len(h) == 0 {
				return Plan{Infeasibility: &Infeasibility{
					Reason:  "no reachable station covers the leg",
					GapFrom: prev,
					GapTo:   q,
				}}
			}
			s := heap.Pop(&h).(route.Station)
			chosen = append(chosen, s)
			if uniform {
				// A full recharge at s delivers exactly s.Position+Capacity-q
				// here; earlier chosen stops cannot beat the current tank.
				if v := s.Position + r.Capacity - q; v > tank {
					tank = v
				}
			} else {
				tank = tankWith(r, chosen, q)
			}
		}
		if i < n {
			heap.Push(&h, r.Stations[i])
		}
		prev = q
	}
	sort.Slice(chosen, func(i, j int) bool { return chosen[i].Position < chosen[j].Position })
	return Plan{Feasible: true, Stations: chosen}
}

// tankWith simulates the trip up to q charging at every chosen station, with
// the tank clamped at capacity whenever a charge overfills it.
func tankWith(r *route.Route, chosen []route.Station, q float64) float64 {
	stops := append([]route.Station(nil), chosen...)
	sort.Slice(stops, func(i, j int) bool { return stops[i].Position < stops[j].Position })
	tank := r.Capacity
	prev := 0.0
	for _, s := range stops {
		tank -= s.Position - prev
		tank += s.Gain
		if tank > r.Capacity {
			tank = r.Capacity
		}
		prev = s.Position
	}
	return tank - (q - prev)
}

// stationHeap orders passed stations by gain, largest first, breaking ties
// towards the later position.
type stationHeap []route.Station

func (h stationHeap) Len() int { return len(h) }

func (h stationHeap) Less(i, j int) bool {
	if h[i].Gain != h[j].Gain {
		return h[i].Gain > h[j].Gain
	}
	return h[i].Position > h[j].Position
}

func (h stationHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *stationHeap) Push(x any) { *h = append(*h, x.(route.Station)) }

func (h *stationHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]
	return s
}
