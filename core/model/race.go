package model

import (
	"github.com/google/uuid"

	"github.com/kilianp07/derby/core/logger"
	"github.com/kilianp07/derby/core/ppn"
)

// DefaultLanes is used when a race is created with an unusable lane count.
const DefaultLanes = 6

// Race groups the vehicles that run against each other on one track.
type Race struct {
	ID         string      `json:"id" yaml:"id"`
	Title      string      `json:"title" yaml:"title"`
	Lanes      int         `json:"lanes" yaml:"lanes"`
	VehicleIDs []string    `json:"vehicle_ids" yaml:"vehicle_ids"`
	Rounds     int         `json:"rounds" yaml:"rounds"`
	Weights    ppn.Weights `json:"weights" yaml:"weights"`
}

// NewRace creates a race with medium weights on every objective.
func NewRace(title string, lanes int, log logger.Logger) *Race {
	r := &Race{
		ID:      uuid.NewString(),
		Title:   title,
		Rounds:  1,
		Weights: ppn.DefaultWeights(),
	}
	r.SetLanes(lanes, log)
	return r
}

// SetLanes sets the lane count, falling back to DefaultLanes when lanes is out
// of the supported range.
func (r *Race) SetLanes(lanes int, log logger.Logger) {
	if lanes < ppn.MinLanes || lanes > ppn.MaxLanes {
		if log != nil {
			log.Warnf("bad number of lanes %d for race %q, defaulting to %d", lanes, r.Title, DefaultLanes)
		}
		lanes = DefaultLanes
	}
	r.Lanes = lanes
}

// AddVehicle enters a vehicle once.
func (r *Race) AddVehicle(id string) {
	for _, v := range r.VehicleIDs {
		if v == id {
			return
		}
	}
	r.VehicleIDs = append(r.VehicleIDs, id)
}

// RemoveVehicle withdraws a vehicle. Unknown IDs are ignored.
func (r *Race) RemoveVehicle(id string) {
	for i, v := range r.VehicleIDs {
		if v == id {
			r.VehicleIDs = append(r.VehicleIDs[:i], r.VehicleIDs[i+1:]...)
			return
		}
	}
}

// Result is one vehicle's lane in a heat and its finishing position.
// Position 0 means not yet recorded.
type Result struct {
	Vehicle  Vehicle `json:"vehicle"`
	Lane     int     `json:"lane"`
	Position int     `json:"position"`
}

// Standing is a vehicle's accumulated points.
type Standing struct {
	Vehicle Vehicle `json:"vehicle"`
	Points  int     `json:"points"`
}
