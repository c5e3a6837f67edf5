package race

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kilianp07/derby/core/logger"
	"github.com/kilianp07/derby/core/model"
	"github.com/kilianp07/derby/core/ppn"
)

// ErrTooFewVehicles is returned when fewer than two vehicles are entered.
var ErrTooFewVehicles = errors.New("need at least two vehicles to race")

// Card is the heat sheet of a race. Heats[h][l] is the vehicle in lane l+1 of
// heat h+1.
type Card struct {
	RaceID string
	Title  string
	Lanes  int
	// Schedule is the engine output the card was built from.
	Schedule []ppn.Heat
	Vehicles []model.Vehicle
	Heats    [][]model.Result
}

// Plan schedules the vehicles of r. Vehicles are numbered by ascending VIN
// before scheduling, so the same roster always yields the same card. The lane
// count is narrowed when fewer vehicles than lanes are entered.
func Plan(r *model.Race, roster []model.Vehicle, log logger.Logger) (*Card, error) {
	if log == nil {
		log = logger.NopLogger{}
	}
	entered := make(map[string]bool, len(r.VehicleIDs))
	for _, id := range r.VehicleIDs {
		entered[id] = true
	}
	var vehicles []model.Vehicle
	for _, v := range roster {
		if entered[v.ID] {
			vehicles = append(vehicles, v)
		}
	}
	if len(vehicles) < ppn.MinCars {
		return nil, ErrTooFewVehicles
	}
	sort.SliceStable(vehicles, func(i, j int) bool { return model.SortByVIN.Less(vehicles[i], vehicles[j]) })

	s, err := ppn.NewScheduler(r.Lanes, len(vehicles),
		ppn.WithRounds(r.Rounds), ppn.WithWeights(r.Weights), ppn.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("race %q: %w", r.Title, err)
	}
	schedule, err := s.Generate()
	if err != nil {
		return nil, fmt.Errorf("race %q: %w", r.Title, err)
	}
	log.Infof("race %q: %d heats for %d vehicles on %d lanes", r.Title, len(schedule), len(vehicles), s.Lanes())

	card := &Card{
		RaceID:   r.ID,
		Title:    r.Title,
		Lanes:    s.Lanes(),
		Schedule: schedule,
		Vehicles: vehicles,
		Heats:    make([][]model.Result, len(schedule)),
	}
	for h, heat := range schedule {
		row := make([]model.Result, len(heat))
		for l, id := range heat {
			row[l] = model.Result{Vehicle: vehicles[id-1], Lane: l + 1}
		}
		card.Heats[h] = row
	}
	return card, nil
}

// Record stores the finishing position of the vehicle in the given heat and
// lane, both zero-based. Positions outside [1, Lanes] clear the result.
func (c *Card) Record(heat, lane, position int) error {
	if heat < 0 || heat >= len(c.Heats) {
		return fmt.Errorf("heat %d out of range", heat+1)
	}
	if lane < 0 || lane >= len(c.Heats[heat]) {
		return fmt.Errorf("lane %d out of range", lane+1)
	}
	if position < 1 || position > c.Lanes {
		position = 0
	}
	c.Heats[heat][lane].Position = position
	return nil
}

// Clear drops every recorded position.
func (c *Card) Clear() {
	for h := range c.Heats {
		for l := range c.Heats[h] {
			c.Heats[h][l].Position = 0
		}
	}
}

// Standings awards 1 + Lanes - position points per recorded finish and sorts
// by points, highest first. Ties are ordered by VIN.
func (c *Card) Standings() []model.Standing {
	points := make(map[string]int, len(c.Vehicles))
	for _, heat := range c.Heats {
		for _, res := range heat {
			if res.Position > 0 {
				points[res.Vehicle.ID] += 1 + c.Lanes - res.Position
			}
		}
	}
	out := make([]model.Standing, len(c.Vehicles))
	for i, v := range c.Vehicles {
		out[i] = model.Standing{Vehicle: v, Points: points[v.ID]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return model.SortByVIN.Less(out[i].Vehicle, out[j].Vehicle)
	})
	return out
}
