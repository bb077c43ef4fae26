package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field limits shared by cards and decks.
const (
	MaxTextLength      = 1024
	MaxImagePathLength = 255
)

// Card-specific validation errors
var (
	ErrCardIDEmpty      = fmt.Errorf("%w: card ID cannot be empty", ErrValidation)
	ErrCardUserIDEmpty  = fmt.Errorf("%w: card user ID cannot be empty", ErrValidation)
	ErrCardDeckIDEmpty  = fmt.Errorf("%w: card deck ID cannot be empty", ErrValidation)
	ErrSentenceEmpty    = fmt.Errorf("%w: sentence cannot be empty", ErrValidation)
	ErrMeaningEmpty     = fmt.Errorf("%w: meaning cannot be empty", ErrValidation)
	ErrTextTooLong      = fmt.Errorf("%w: text exceeds %d characters", ErrValidation, MaxTextLength)
	ErrImagePathTooLong = fmt.Errorf("%w: image path exceeds %d characters", ErrValidation, MaxImagePathLength)
	ErrSavingsScore     = fmt.Errorf("%w: savings score must be between %d and %d", ErrValidation, UnansweredLevel, MaxLevel)
)

// Card is a flashcard owned by one user and filed in one deck.
//
// SavingsScore is the proficiency level (0 before the first answer, then 1..7).
// RetentionState becomes true once the card is answered correctly at level 7
// and is never cleared.
type Card struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	DeckID             uuid.UUID  `json:"deck_id"`
	Sentence           string     `json:"sentence"`
	Meaning            string     `json:"meaning"`
	ImagePath          *string    `json:"image_path,omitempty"`
	Etymology          *string    `json:"etymology,omitempty"`
	SavingsScore       int        `json:"savings_score"`
	RetentionState     bool       `json:"retention_state"`
	PreviousAnswerDate *time.Time `json:"previous_answer_date,omitempty"`
	NextAnswerDate     *time.Time `json:"next_answer_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// CardContent is the user-editable part of a card.
type CardContent struct {
	Sentence  string
	Meaning   string
	ImagePath *string
	Etymology *string
}

// NewCard creates an unanswered card in deck for user.
// The first review date is set by the caller from the owner's interval table.
// Timestamps are assigned by the store.
func NewCard(userID, deckID uuid.UUID, content CardContent) (*Card, error) {
	card := &Card{
		ID:           uuid.New(),
		UserID:       userID,
		DeckID:       deckID,
		SavingsScore: UnansweredLevel,
	}
	card.SetContent(content)

	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

// SetContent replaces the editable fields. Text is trimmed and empty
// optional values are stored as nil.
func (c *Card) SetContent(content CardContent) {
	c.Sentence = strings.TrimSpace(content.Sentence)
	c.Meaning = strings.TrimSpace(content.Meaning)
	c.ImagePath = normalizeOptional(content.ImagePath)
	c.Etymology = normalizeOptional(content.Etymology)
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	switch {
	case c.ID == uuid.Nil:
		return ErrCardIDEmpty
	case c.UserID == uuid.Nil:
		return ErrCardUserIDEmpty
	case c.DeckID == uuid.Nil:
		return ErrCardDeckIDEmpty
	case c.Sentence == "":
		return ErrSentenceEmpty
	case c.Meaning == "":
		return ErrMeaningEmpty
	case tooLong(c.Sentence, MaxTextLength), tooLong(c.Meaning, MaxTextLength):
		return ErrTextTooLong
	case c.Etymology != nil && tooLong(*c.Etymology, MaxTextLength):
		return ErrTextTooLong
	case c.ImagePath != nil && tooLong(*c.ImagePath, MaxImagePathLength):
		return ErrImagePathTooLong
	case c.SavingsScore < UnansweredLevel || c.SavingsScore > MaxLevel:
		return ErrSavingsScore
	}
	return nil
}

// IsDue reports whether the card's review date lies strictly before now.
// A card that has never been scheduled is not due.
func (c *Card) IsDue(now time.Time) bool {
	return c.NextAnswerDate != nil && c.NextAnswerDate.Before(now)
}

// OwnerID implements Owned.
func (c *Card) OwnerID() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}
	return c.UserID
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func tooLong(s string, limit int) bool {
	return len([]rune(s)) > limit
}
