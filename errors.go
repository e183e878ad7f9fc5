package retrofit

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError reports malformed input. Builders return it instead of
// silently correcting the data.
type ValidationError struct {
	Subject string // dataset or item at fault, e.g. "cashflow[2026]"
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Subject, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(subject, format string, args ...any) *ValidationError {
	return &ValidationError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}

// DegenerateInputWarning describes an input that produced neutral output,
// like a distribution whose total is zero. It is not an error: the result
// is still well defined and flagged as Empty.
type DegenerateInputWarning struct {
	Subject string
	Reason  string
}

func (w DegenerateInputWarning) String() string {
	return fmt.Sprintf("%s: %s", w.Subject, w.Reason)
}
