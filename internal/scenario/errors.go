package scenario

import "errors"

var (
	// ErrUnknownParameter indicates a parameter name the active scenario
	// does not declare. The operation has no effect.
	ErrUnknownParameter = errors.New("scenario: unknown parameter")

	// ErrUnknownModel indicates a selector no scenario is registered for.
	ErrUnknownModel = errors.New("scenario: unknown model")
)
