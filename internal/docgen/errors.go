package docgen

import (
	"errors"
	"fmt"
)

var (
	ErrTimedOut              = errors.New("documentation run timed out")
	ErrInvalidResponseFormat = errors.New("invalid response format from assistant")
	ErrDisabled              = errors.New("documentation assistant is not configured")
)

// AssistantRunFailedError reports a run that ended as failed, cancelled or expired.
type AssistantRunFailedError struct {
	Status string
}

func (e *AssistantRunFailedError) Error() string {
	return "assistant run failed with status: " + e.Status
}

// RetryError is returned once every attempt has failed. It unwraps to the last failure.
type RetryError struct {
	Op       string
	Attempts int
	Last     error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("failed to %s documentation after %d attempts: %v", e.Op, e.Attempts, e.Last)
}

func (e *RetryError) Unwrap() error {
	return e.Last
}
