package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Statistical-layer errors: raised per-computation and surfaced to the
	// caller, never silently replaced with placeholder values.
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrDivisionByZero   = errors.New("non-positive mean where a ratio is required")

	// Acquisition-layer errors: fatal, abort the whole run. Partial
	// measurement sequences are never trusted for statistics.
	ErrExecution = errors.New("benchmark process failed")
	ErrParse     = errors.New("benchmark output unparseable")
)

// Error constructors with context
func NewInsufficientDataError(operation string, n, required int) error {
	return fmt.Errorf("%w: %s needs %d measurements, have %d", ErrInsufficientData, operation, required, n)
}

func NewDivisionByZeroError(sample string, mean float64) error {
	return fmt.Errorf("%w: sample %q has mean %g", ErrDivisionByZero, sample, mean)
}

func NewExecutionError(configuration string, invocation int, err error) error {
	return fmt.Errorf("%w: configuration %q invocation %d: %v", ErrExecution, configuration, invocation, err)
}

func NewParseError(configuration string, invocation int, reason string) error {
	return fmt.Errorf("%w: configuration %q invocation %d: %s", ErrParse, configuration, invocation, reason)
}

// Error checking helpers
func IsStatisticalError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrDivisionByZero)
}

func IsAcquisitionError(err error) bool {
	return errors.Is(err, ErrExecution) ||
		errors.Is(err, ErrParse)
}
