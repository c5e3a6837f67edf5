package ppn

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("invalid schedule parameters")
	// ErrConfiguration is matched by every ConfigurationError.
	ErrConfiguration = errors.New("no generator parameters")
)

// ValidationError reports an input outside its accepted domain.
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("%s must be at least %d, got %d", e.Field, e.Min, e.Value)
	}
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

// Is makes errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConfigurationError reports a lane/competitor pair with no table row.
type ConfigurationError struct {
	Lanes int
	Cars  int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("can't find generator parameters for %d lanes and %d cars", e.Lanes, e.Cars)
}

// Is makes errors.Is(err, ErrConfiguration) succeed.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
