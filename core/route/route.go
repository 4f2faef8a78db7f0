package route

import (
	"fmt"
	"math"
	"sort"
)

// Station is a charging stop along the corridor. Position is the distance in
// kilometres from the start. Gain is the driving range in kilometres restored
// by stopping there; a zero Gain means a full recharge and is replaced by the
// battery capacity when the route is built.
type Station struct {
	Position float64 `json:"position"`
	Gain     float64 `json:"gain,omitempty"`
}

// Route describes a one-way trip on a straight corridor: the vehicle starts at
// kilometre zero with a full battery worth Capacity kilometres of range and
// must reach Destination. Stations are sorted by position at construction and
// must not be mutated afterwards.
type Route struct {
	Destination float64
	Capacity    float64
	Stations    []Station
}

// Gap is a stretch of road between two consecutive mandatory points
// (the start, a station, or the destination).
type Gap struct {
	From float64
	To   float64
}

// Width returns the length of the gap in kilometres.
func (g Gap) Width() float64 { return g.To - g.From }

// ValidationError reports why a route description was rejected.
type ValidationError struct {
	Field string
	Value float64
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("route: %s %v: %s", e.Field, e.Value, e.Msg)
}

// New validates the trip description and returns an immutable Route with the
// stations copied and sorted by ascending position. No partial route is ever
// returned: any violation yields a nil route and a *ValidationError.
func New(destination, capacity float64, stations []Station) (*Route, error) {
	if !isFinite(destination) || destination <= 0 {
		return nil, &ValidationError{Field: "destination", Value: destination, Msg: "must be positive and finite"}
	}
	if !isFinite(capacity) || capacity <= 0 {
		return nil, &ValidationError{Field: "capacity", Value: capacity, Msg: "must be positive and finite"}
	}
	st := make([]Station, len(stations))
	copy(st, stations)
	for i, s := range st {
		if !isFinite(s.Position) {
			return nil, &ValidationError{Field: "station position", Value: s.Position, Msg: "must be finite"}
		}
		if s.Position <= 0 || s.Position >= destination {
			return nil, &ValidationError{Field: "station position", Value: s.Position, Msg: "must lie strictly between start and destination"}
		}
		if !isFinite(s.Gain) || s.Gain < 0 {
			return nil, &ValidationError{Field: "station gain", Value: s.Gain, Msg: "must be non-negative and finite"}
		}
		if s.Gain > capacity {
			return nil, &ValidationError{Field: "station gain", Value: s.Gain, Msg: "cannot exceed battery capacity"}
		}
		if s.Gain == 0 {
			st[i].Gain = capacity
		}
	}
	sort.Slice(st, func(i, j int) bool { return st[i].Position < st[j].Position })
	for i := 1; i < len(st); i++ {
		if st[i].Position == st[i-1].Position {
			return nil, &ValidationError{Field: "station position", Value: st[i].Position, Msg: "duplicate position"}
		}
	}
	return &Route{Destination: destination, Capacity: capacity, Stations: st}, nil
}

// NewUniform builds a route where every station grants a full recharge, the
// common corridor model with interchangeable fast chargers.
func NewUniform(destination, capacity float64, positions []float64) (*Route, error) {
	st := make([]Station, len(positions))
	for i, p := range positions {
		st[i] = Station{Position: p, Gain: capacity}
	}
	return New(destination, capacity, st)
}

// Uniform reports whether every station grants a full recharge.
func (r *Route) Uniform() bool {
	for _, s := range r.Stations {
		if s.Gain != r.Capacity {
			return false
		}
	}
	return true
}

// MaxGap returns the widest stretch between consecutive mandatory points:
// the start, each station and the destination.
func (r *Route) MaxGap() Gap {
	widest := Gap{}
	prev := 0.0
	for _, s := range r.Stations {
		if s.Position-prev > widest.Width() {
			widest = Gap{From: prev, To: s.Position}
		}
		prev = s.Position
	}
	if r.Destination-prev > widest.Width() {
		widest = Gap{From: prev, To: r.Destination}
	}
	return widest
}

// Feasible reports whether a vehicle recharging fully at every station can
// complete the trip. The returned gap is always the widest stretch; when the
// first value is false it is the leg no single charge can cross.
func (r *Route) Feasible() (bool, Gap) {
	g := r.MaxGap()
	return g.Width() <= r.Capacity, g
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
