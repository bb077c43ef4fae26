package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
)

// RecordedAnswer is one call to MockCardReviewService.RecordAnswer.
type RecordedAnswer struct {
	UserID    uuid.UUID
	CardID    uuid.UUID
	IsCorrect bool
}

// MockCardReviewService implements card_review.Service for testing
type MockCardReviewService struct {
	RecordAnswerFn func(ctx context.Context, userID, cardID uuid.UUID, isCorrect bool) (*domain.Card, error)

	Card *domain.Card
	Err  error

	mu      sync.Mutex
	Answers []RecordedAnswer
}

// RecordAnswer implements card_review.Service
func (m *MockCardReviewService) RecordAnswer(
	ctx context.Context,
	userID, cardID uuid.UUID,
	isCorrect bool,
) (*domain.Card, error) {
	m.mu.Lock()
	m.Answers = append(m.Answers, RecordedAnswer{UserID: userID, CardID: cardID, IsCorrect: isCorrect})
	m.mu.Unlock()
	if m.RecordAnswerFn != nil {
		return m.RecordAnswerFn(ctx, userID, cardID, isCorrect)
	}
	return m.Card, m.Err
}
