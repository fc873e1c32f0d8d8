package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrUniqueViolation signals that the store rejected a write on a unique constraint.
// It is the authoritative duplicate signal; application pre-checks are only a fast path.
var ErrUniqueViolation = errors.New("unique constraint violation")

const uniqueViolationCode = pq.ErrorCode("23505")

// UniqueViolationError names the constraint that rejected the write.
type UniqueViolationError struct {
	Constraint string
	Err        error
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique violation on %s: %v", e.Constraint, e.Err)
}

// Is lets errors.Is(err, ErrUniqueViolation) match any constraint.
func (e *UniqueViolationError) Is(target error) bool {
	return target == ErrUniqueViolation
}

func (e *UniqueViolationError) Unwrap() error {
	return e.Err
}

// TranslateError maps driver errors onto store-level sentinels and leaves everything else untouched.
func TranslateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return &UniqueViolationError{Constraint: pqErr.Constraint, Err: err}
	}
	return err
}
