package ppn

import "github.com/kilianp07/derby/core/logger"

// Heat lists competitor IDs in lane order.
type Heat []int

// Build expands the generator row for lanes and cars into the raw cyclic heat
// matrix. Each round yields one heat per competitor, starting with that
// competitor in the first lane. A rounds value below one means a single round;
// requests beyond the row's maximum are clamped with a warning.
func Build(lanes, cars, rounds int, log logger.Logger) ([]Heat, error) {
	spec, err := Lookup(lanes, cars)
	if err != nil {
		return nil, err
	}
	lanes = EffectiveLanes(lanes, cars)
	if rounds < 1 {
		rounds = 1
	}
	if limit := spec.MaxRounds(); rounds > limit {
		if log != nil {
			log.Warnf("only up to %d rounds allowed for %d cars on %d lanes, using %d", limit, cars, lanes, limit)
		}
		rounds = limit
	}

	step := lanes - 1
	gens := spec.LaneIncrements[:step*rounds]

	heats := make([]Heat, 0, cars*rounds)
	for r := 0; r < rounds; r++ {
		roundGens := gens[r*step : (r+1)*step]
		for c := 1; c <= cars; c++ {
			heat := make(Heat, lanes)
			heat[0] = c
			cur := c
			for l, g := range roundGens {
				cur += g
				// increments never exceed cars, one wrap is enough
				if cur > cars {
					cur -= cars
				}
				heat[l+1] = cur
			}
			heats = append(heats, heat)
		}
	}
	return heats, nil
}
