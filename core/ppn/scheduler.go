package ppn

import "github.com/kilianp07/derby/core/logger"

// Params fully describes one schedule request.
type Params struct {
	Lanes   int
	Cars    int
	Rounds  int
	Weights Weights
}

// Validate checks lane and competitor counts and weights.
func (p Params) Validate() error {
	if p.Lanes < MinLanes || p.Lanes > MaxLanes {
		return &ValidationError{Field: "lanes", Value: p.Lanes, Min: MinLanes, Max: MaxLanes}
	}
	if p.Cars < MinCars || p.Cars > MaxCars {
		return &ValidationError{Field: "cars", Value: p.Cars, Min: MinCars, Max: MaxCars}
	}
	return p.Weights.Validate()
}

// Generate validates p, builds the raw schedule and reorders it. It keeps no
// state between calls and is safe for concurrent use.
func Generate(p Params, log logger.Logger) ([]Heat, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	raw, err := Build(p.Lanes, p.Cars, p.Rounds, log)
	if err != nil {
		return nil, err
	}
	return Reorder(raw, EffectiveLanes(p.Lanes, p.Cars), p.Cars, p.Weights), nil
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger routes scheduler diagnostics to log.
func WithLogger(log logger.Logger) Option {
	return func(s *Scheduler) { s.log = log }
}

// WithRounds sets the initial number of rounds.
func WithRounds(n int) Option {
	return func(s *Scheduler) { s.Rounds = n }
}

// WithWeights sets the initial objective weights.
func WithWeights(w Weights) Option {
	return func(s *Scheduler) { s.Weights = w }
}

// Scheduler generates schedules for a fixed lane and competitor count.
// Rounds and Weights may be changed between calls to Generate; do not change
// them while another goroutine is generating from the same Scheduler.
type Scheduler struct {
	lanes int
	cars  int
	log   logger.Logger

	Rounds  int
	Weights Weights
}

// NewScheduler validates the lane and competitor counts.
func NewScheduler(lanes, cars int, opts ...Option) (*Scheduler, error) {
	if err := (Params{Lanes: lanes, Cars: cars}).Validate(); err != nil {
		return nil, err
	}
	s := &Scheduler{lanes: lanes, cars: cars, Rounds: 1, log: logger.NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Lanes returns the lane count in use after narrowing to the number of cars.
func (s *Scheduler) Lanes() int { return EffectiveLanes(s.lanes, s.cars) }

// Cars returns the competitor count.
func (s *Scheduler) Cars() int { return s.cars }

// Params returns the request the next Generate call will run.
func (s *Scheduler) Params() Params {
	return Params{Lanes: s.lanes, Cars: s.cars, Rounds: s.Rounds, Weights: s.Weights}
}

// Generate returns a fresh ordered heat list.
func (s *Scheduler) Generate() ([]Heat, error) {
	return Generate(s.Params(), s.log)
}
