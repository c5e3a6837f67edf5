package ppn

import (
	"fmt"
	"strconv"
	"strings"
)

// Weight scales one scheduling objective. Zero disables the objective.
type Weight int

const (
	Zero   Weight = 0
	Light  Weight = 1
	Medium Weight = 10
	Heavy  Weight = 100
)

var weightNames = map[string]Weight{
	"zero":   Zero,
	"light":  Light,
	"medium": Medium,
	"heavy":  Heavy,
}

// ParseWeight accepts a level name (zero, light, medium, heavy) or a
// non-negative integer.
func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if w, ok := weightNames[s]; ok {
		return w, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown weight %q", s)
	}
	if n < 0 {
		return 0, &ValidationError{Field: "weight", Value: n, Min: 0, Max: -1}
	}
	return Weight(n), nil
}

// UnmarshalText lets configuration files use level names.
func (w *Weight) UnmarshalText(b []byte) error {
	v, err := ParseWeight(string(b))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// MarshalText writes the level name, or the integer for custom weights.
func (w Weight) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w Weight) String() string {
	for name, v := range weightNames {
		if v == w {
			return name
		}
	}
	return strconv.Itoa(int(w))
}

// Weights holds the three objective multipliers.
type Weights struct {
	// Balance keeps per-competitor race counts even (W1).
	Balance Weight `json:"balance" yaml:"balance"`
	// AvoidCompetitor penalises competitors racing in consecutive heats (W2).
	AvoidCompetitor Weight `json:"avoid_competitor" yaml:"avoid_competitor"`
	// AvoidLane penalises a competitor keeping its lane in consecutive heats (W3).
	AvoidLane Weight `json:"avoid_lane" yaml:"avoid_lane"`
}

// DefaultWeights returns Medium on every objective.
func DefaultWeights() Weights {
	return Weights{Balance: Medium, AvoidCompetitor: Medium, AvoidLane: Medium}
}

// IsZero reports whether every objective is disabled.
func (w Weights) IsZero() bool {
	return w.Balance == 0 && w.AvoidCompetitor == 0 && w.AvoidLane == 0
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	for _, f := range []struct {
		name string
		v    Weight
	}{
		{"balance weight", w.Balance},
		{"avoid_competitor weight", w.AvoidCompetitor},
		{"avoid_lane weight", w.AvoidLane},
	} {
		if f.v < 0 {
			return &ValidationError{Field: f.name, Value: int(f.v), Min: 0, Max: -1}
		}
	}
	return nil
}
