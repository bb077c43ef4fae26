package domain

import "github.com/google/uuid"

// Owned is implemented by records that belong to exactly one user.
type Owned interface {
	OwnerID() uuid.UUID
}

// AssertOwnsOrForbidden is the single authorization gate for card and deck
// operations. It returns ErrForbidden unless record belongs to userID.
// Callers resolve NotFound before calling it.
func AssertOwnsOrForbidden(record Owned, userID uuid.UUID) error {
	if record == nil || userID == uuid.Nil {
		return ErrForbidden
	}
	owner := record.OwnerID()
	if owner == uuid.Nil || owner != userID {
		return ErrForbidden
	}
	return nil
}
