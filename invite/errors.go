package invite

import (
	"errors"
	"fmt"

	"sevgi/lifecycle"
)

// Every error returned by the service matches one of these with errors.Is.
// None of them is fatal, the caller renders a message and carries on.
var (
	ErrNotFound              = errors.New("invite not found")
	ErrAlreadyFinished       = lifecycle.ErrAlreadyFinished
	ErrInvalidStatus         = lifecycle.ErrInvalidTransition
	ErrInvalidInput          = errors.New("invalid input")
	ErrTokenGenerationFailed = errors.New("could not generate a unique invite token")
	ErrConflict              = errors.New("invite was modified concurrently, try again")

	// ErrNoAnswers is an ErrInvalidInput
	ErrNoAnswers = fmt.Errorf("%w: no valid answers, please answer the questions", ErrInvalidInput)
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
