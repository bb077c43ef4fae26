package store

import (
	"errors"
	"fmt"
)

// Store error taxonomy. Implementations return these (or the entity-specific
// variants, which wrap them) so callers never inspect driver errors.
var (
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate reports a unique constraint violation.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity reports a row the database rejected on a foreign key,
	// check or not-null constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	ErrUserNotFound         = fmt.Errorf("%w: user", ErrNotFound)
	ErrDeckNotFound         = fmt.Errorf("%w: deck", ErrNotFound)
	ErrCardNotFound         = fmt.Errorf("%w: card", ErrNotFound)
	ErrSettingsNotFound     = fmt.Errorf("%w: user settings", ErrNotFound)
	ErrSummaryNotFound      = fmt.Errorf("%w: user summary", ErrNotFound)
	ErrVerificationNotFound = fmt.Errorf("%w: verification", ErrNotFound)

	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError reports whether err is any not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any duplicate error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
