package quant

import (
	"errors"
	"fmt"
)

// Domain errors for model evaluation.
var (
	// ErrInvalidParameter indicates a non-positive volume, density, mass,
	// length, resolution or level index.
	ErrInvalidParameter = errors.New("quant: invalid parameter")

	// ErrUndefinedEvaluation indicates a formula evaluated outside the reals,
	// such as the density of states at negative energy.
	ErrUndefinedEvaluation = errors.New("quant: undefined evaluation")
)

// ParamError wraps a domain error with the offending parameter.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %g", e.Wrapped.Error(), e.Name, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// Positive returns an ErrInvalidParameter for name unless v > 0.
func Positive(name string, v float64) error {
	if v > 0 {
		return nil
	}
	return &ParamError{Name: name, Value: v, Wrapped: ErrInvalidParameter}
}

// AtLeast returns an ErrInvalidParameter for name unless v >= min.
func AtLeast(name string, v, min int) error {
	if v >= min {
		return nil
	}
	return &ParamError{Name: name, Value: float64(v), Wrapped: ErrInvalidParameter}
}
