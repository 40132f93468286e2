package survey

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStepIncomplete    = errors.New("step incomplete")
	ErrPersonnelNotFound = errors.New("personnel not on roster")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrUnknownItem       = errors.New("item does not belong to the current step")
	ErrSessionClosed     = errors.New("session is closed")
)

// StepIncompleteError reports what is still missing on the current step. It never changes state.
type StepIncompleteError struct {
	Step    int
	Missing []string
}

func (e *StepIncompleteError) Error() string {
	if e.Step == 0 {
		return "step incomplete: personnel not selected"
	}
	return fmt.Sprintf("step %d incomplete: missing ratings for %s", e.Step, strings.Join(e.Missing, ", "))
}

func (e *StepIncompleteError) Is(target error) bool {
	return target == ErrStepIncomplete
}
