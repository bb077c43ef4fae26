// Package card_review records answers to flashcards. One answer moves the
// card along the proficiency levels, reschedules it from the owner's interval
// table and counts the answer in the owner's summary, all in one transaction.
package card_review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
)

// Service processes answers to flashcards.
type Service interface {
	// RecordAnswer applies one answer to a card and returns the updated card.
	//
	// Within a single transaction it:
	//  1. locks and loads the card (store.ErrCardNotFound if missing)
	//  2. checks that userID owns it (domain.ErrForbidden otherwise)
	//  3. loads the owner's interval table and locks their summary
	//  4. computes the new level, retention state and review dates
	//  5. writes the card and the summary
	//
	// Nothing is written when any step fails. There are no retries.
	RecordAnswer(ctx context.Context, userID, cardID uuid.UUID, isCorrect bool) (*domain.Card, error)
}

// ServiceError is returned by RecordAnswer for every failure. Message says
// which step failed; Err keeps the cause for errors.Is checks at the HTTP edge.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

func (e *ServiceError) Error() string {
	msg := e.Operation + ": " + e.Message
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ServiceError) Unwrap() error { return e.Err }

// NewRecordAnswerError wraps err as a failed step of RecordAnswer.
func NewRecordAnswerError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "record_answer", Message: message, Err: err}
}
