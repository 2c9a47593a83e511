package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed task or parameter input. It is returned
// before any simulation state is mutated; no partial results exist.
var ErrInvalidInput = errors.New("invalid input")

// ErrDivergence marks a run that exceeded its tick budget without every task
// completing. This is defensive only: it indicates a broken internal
// invariant, is always fatal to the run, and is never retried.
var ErrDivergence = errors.New("simulation divergence")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func divergencef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDivergence, fmt.Sprintf(format, args...))
}
