package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateTransition is returned when a rule is inserted for a key that already has one.
var ErrDuplicateTransition = errors.New("duplicate transition")

// ErrUndefinedTransition is returned when no rule exists for a (state, symbol) pair.
var ErrUndefinedTransition = errors.New("undefined transition")

// ErrHeadOutOfBounds is returned when the head leaves the provisioned tape.
var ErrHeadOutOfBounds = errors.New("head out of bounds")

// ErrStepLimitExceeded is returned when a run exhausts its step budget.
var ErrStepLimitExceeded = errors.New("step limit exceeded")

// ErrProblemNotFound is returned when a problem name is not registered.
var ErrProblemNotFound = errors.New("problem not found")

// ErrReportNotFound is returned when no report is stored for a problem.
var ErrReportNotFound = errors.New("report not found")

// DuplicateTransitionError describes a rejected insert.
type DuplicateTransitionError struct {
	Key      Key
	Existing Action
	Rejected Action
}

func (e *DuplicateTransitionError) Error() string {
	return fmt.Sprintf("duplicate transition for %s: already mapped to %s, rejected %s",
		e.Key, e.Existing, e.Rejected)
}

func (e *DuplicateTransitionError) Unwrap() error {
	return ErrDuplicateTransition
}

// UndefinedTransitionError reports the configuration the engine could not leave.
type UndefinedTransitionError struct {
	State  State
	Symbol Symbol
	Head   int
	Step   int
}

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("undefined transition for (%d, %s) at head %d after %d steps",
		e.State, e.Symbol, e.Head, e.Step)
}

func (e *UndefinedTransitionError) Unwrap() error {
	return ErrUndefinedTransition
}

// HeadOutOfBoundsError means the caller did not pad the tape with enough sentinel cells.
type HeadOutOfBoundsError struct {
	Head  int
	Size  int
	State State
	Step  int
}

func (e *HeadOutOfBoundsError) Error() string {
	return fmt.Sprintf("head at %d outside tape of %d cells in state %d after %d steps",
		e.Head, e.Size, e.State, e.Step)
}

func (e *HeadOutOfBoundsError) Unwrap() error {
	return ErrHeadOutOfBounds
}

// StepLimitError is returned when the configured step budget is exhausted.
type StepLimitError struct {
	Limit int
	State State
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit of %d exceeded in state %d", e.Limit, e.State)
}

func (e *StepLimitError) Unwrap() error {
	return ErrStepLimitExceeded
}
