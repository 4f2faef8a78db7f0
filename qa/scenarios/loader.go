// Package scenarios runs YAML-described planning cases end to end through the
// planner and checks the resulting stops against the expected outcome.
package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sanjithdevineni/AoA-Project-1/core/route"
)

type StationDef struct {
	Position float64 `yaml:"position"`
	Gain     float64 `yaml:"gain,omitempty"`
}

type Expected struct {
	Feasible bool      `yaml:"feasible"`
	Stops    []float64 `yaml:"stops,omitempty"`
}

type Scenario struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Destination float64      `yaml:"destination"`
	Capacity    float64      `yaml:"capacity"`
	Stations    []StationDef `yaml:"stations,omitempty"`
	Expected    Expected     `yaml:"expected"`
}

// Route builds the validated route the scenario describes.
func (sc *Scenario) Route() (*route.Route, error) {
	stations := make([]route.Station, len(sc.Stations))
	for i, s := range sc.Stations {
		stations[i] = route.Station{Position: s.Position, Gain: s.Gain}
	}
	return route.New(sc.Destination, sc.Capacity, stations)
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
