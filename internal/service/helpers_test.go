package service_test

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/domain/srs"
)

var testNow = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedScheduler() srs.Service {
	return srs.NewService(srs.FixedClock(testNow))
}

func deckOf(userID uuid.UUID) *domain.Deck {
	return &domain.Deck{ID: uuid.New(), UserID: userID, Name: "verbs"}
}

func cardIn(deck *domain.Deck) *domain.Card {
	return &domain.Card{
		ID:       uuid.New(),
		UserID:   deck.UserID,
		DeckID:   deck.ID,
		Sentence: "忘却",
		Meaning:  "oblivion",
	}
}
