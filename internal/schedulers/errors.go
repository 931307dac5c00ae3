package schedulers

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is wrapped by every *PreconditionError.
	ErrPrecondition = errors.New("scheduling precondition violated")
	// ErrNotImplemented is returned for selectors with no simulation behind them.
	ErrNotImplemented = errors.New("scheduling algorithm not implemented")
)

// PreconditionError describes invalid simulation input. Index is the
// offending process's position in the caller's list, or -1 when the problem
// is not tied to a single process.
type PreconditionError struct {
	Field   string
	Index   int
	Message string
}

func (e *PreconditionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("processes[%d].%s: %s", e.Index, e.Field, e.Message)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

func preconditionf(field string, index int, format string, args ...any) *PreconditionError {
	return &PreconditionError{Field: field, Index: index, Message: fmt.Sprintf(format, args...)}
}
