package config

import (
	"github.com/kilianp07/derby/core/ppn"
)

// ScheduleConfig holds the defaults applied to schedule requests that omit a
// value.
type ScheduleConfig struct {
	Lanes   int         `json:"lanes"`
	Rounds  int         `json:"rounds"`
	Weights ppn.Weights `json:"weights"`
}

// DefaultSchedule returns six lanes, one round and medium weights.
func DefaultSchedule() ScheduleConfig {
	return ScheduleConfig{
		Lanes:   6,
		Rounds:  1,
		Weights: ppn.DefaultWeights(),
	}
}

// SetDefaults fills zero lane and round counts.
func (c *ScheduleConfig) SetDefaults() {
	if c.Lanes == 0 {
		c.Lanes = 6
	}
	if c.Rounds <= 0 {
		c.Rounds = 1
	}
}

// Validate checks the lane count and weights.
func (c ScheduleConfig) Validate() error {
	if c.Lanes < ppn.MinLanes || c.Lanes > ppn.MaxLanes {
		return &ppn.ValidationError{Field: "lanes", Value: c.Lanes, Min: ppn.MinLanes, Max: ppn.MaxLanes}
	}
	return c.Weights.Validate()
}
