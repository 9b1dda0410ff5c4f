package entity

import "errors"

// Outcome is the single result classification shared by every operation.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeValidationFailed
	OutcomeConflict
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeConflict:
		return "conflict"
	default:
		return "failed"
	}
}

func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}

	if _, ok := AsValidationError(err); ok {
		return OutcomeValidationFailed
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrConflict):
		return OutcomeConflict
	}

	return OutcomeFailed
}
