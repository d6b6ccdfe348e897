package solver

import (
	"errors"
	"fmt"
)

// Domain errors for master-equation integration.
var (
	// ErrUnstable indicates the integration produced NaN/Inf entries or the
	// density matrix trace drifted away from one.
	ErrUnstable = errors.New("solver: integration unstable")

	// ErrDimensionMismatch indicates operators of differing dimensions in
	// one problem.
	ErrDimensionMismatch = errors.New("solver: operator dimension mismatch")

	// ErrBadTimes indicates a sample-time grid that is empty or not
	// strictly increasing.
	ErrBadTimes = errors.New("solver: invalid sample times")
)

// SimulationError carries the integration context of a failure. It is the
// error surfaced to callers when a physically valid-looking configuration
// turns out to be numerically ill-posed; sessions treat it as non-fatal.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
