package planner

import (
	"errors"
	"math/bits"

	"github.com/sanjithdevineni/AoA-Project-1/core/route"
)

// ErrNotUniform is returned by MinStopsDP for routes with reduced-gain
// stations, which the full-recharge model cannot represent.
var ErrNotUniform = errors.New("route has reduced-gain stations")

// ExhaustiveMinStops returns the true minimum number of stops by simulating
// every subset of stations. Exponential, meant as an oracle for small
// instances; callers should keep the catalog under ~20 stations.
func ExhaustiveMinStops(r *route.Route) (int, bool) {
	n := len(r.Stations)
	best := -1
	for mask := 0; mask < 1<<uint(n); mask++ {
		stops := bits.OnesCount(uint(mask))
		if best >= 0 && stops >= best {
			continue
		}
		if reaches(r, mask) {
			best = stops
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// reaches simulates the trip stopping exactly at the stations selected by
// mask, clamping the tank at capacity after each charge.
func reaches(r *route.Route, mask int) bool {
	tank := r.Capacity
	prev := 0.0
	for i, s := range r.Stations {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		tank -= s.Position - prev
		if tank < 0 {
			return false
		}
		tank += s.Gain
		if tank > r.Capacity {
			tank = r.Capacity
		}
		prev = s.Position
	}
	return tank-(r.Destination-prev) >= 0
}

// MinStopsDP plans the route with the quadratic shortest-hop recurrence over
// the augmented point sequence {start, stations..., destination}, where a hop
// is allowed whenever the distance fits in a full battery. It serves as a
// second oracle and as the baseline subject in benchmark comparisons, and only
// supports the full-recharge model.
func MinStopsDP(r *route.Route) (Plan, error) {
	if !r.Uniform() {
		return Plan{}, ErrNotUniform
	}
	if r.Capacity >= r.Destination {
		return Plan{Feasible: true}, nil
	}
	pts := make([]float64, 0, len(r.Stations)+2)
	pts = append(pts, 0)
	for _, s := range r.Stations {
		pts = append(pts, s.Position)
	}
	pts = append(pts, r.Destination)

	n := len(pts)
	unreachable := n + 1
	dist := make([]int, n)
	parent := make([]int, n)
	for i := range dist {
		dist[i] = unreachable
		parent[i] = -1
	}
	dist[0] = 0
	for j := 1; j < n; j++ {
		cost := 1
		if j == n-1 {
			cost = 0
		}
		for i := j - 1; i >= 0; i-- {
			if pts[j]-pts[i] > r.Capacity {
				break
			}
			if dist[i]+cost < dist[j] {
				dist[j] = dist[i] + cost
				parent[j] = i
			}
		}
	}
	if dist[n-1] >= unreachable {
		g := r.MaxGap()
		return Plan{Infeasibility: &Infeasibility{
			Reason:  "leg wider than the battery range",
			GapFrom: g.From,
			GapTo:   g.To,
		}}, nil
	}
	chosen := make([]route.Station, 0, dist[n-1])
	for j := parent[n-1]; j > 0; j = parent[j] {
		chosen = append(chosen, r.Stations[j-1])
	}
	for i, j := 0, len(chosen)-1; i < j; i, j = i+1, j-1 {
		chosen[i], chosen[j] = chosen[j], chosen[i]
	}
	return Plan{Feasible: true, Stations: chosen}, nil
}
