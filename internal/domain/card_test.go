package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewCard(t *testing.T) {
	t.Parallel()

	userID, deckID := uuid.New(), uuid.New()

	card, err := NewCard(userID, deckID, CardContent{
		Sentence:  "  oblivion  ",
		Meaning:   "the state of being forgotten",
		ImagePath: strPtr("   "),
		Etymology: strPtr("Latin oblivio"),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, card.ID)
	assert.Equal(t, userID, card.UserID)
	assert.Equal(t, deckID, card.DeckID)
	assert.Equal(t, "oblivion", card.Sentence, "text is trimmed")
	assert.Nil(t, card.ImagePath, "blank optional values become nil")
	require.NotNil(t, card.Etymology)
	assert.Equal(t, "Latin oblivio", *card.Etymology)
	assert.Equal(t, UnansweredLevel, card.SavingsScore)
	assert.False(t, card.RetentionState)
	assert.Nil(t, card.NextAnswerDate)
}

func TestCardValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Card {
		return &Card{
			ID:       uuid.New(),
			UserID:   uuid.New(),
			DeckID:   uuid.New(),
			Sentence: "s",
			Meaning:  "m",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Card)
		wantErr error
	}{
		{"valid", func(c *Card) {}, nil},
		{"missing id", func(c *Card) { c.ID = uuid.Nil }, ErrCardIDEmpty},
		{"missing user", func(c *Card) { c.UserID = uuid.Nil }, ErrCardUserIDEmpty},
		{"missing deck", func(c *Card) { c.DeckID = uuid.Nil }, ErrCardDeckIDEmpty},
		{"empty sentence", func(c *Card) { c.Sentence = "" }, ErrSentenceEmpty},
		{"empty meaning", func(c *Card) { c.Meaning = "" }, ErrMeaningEmpty},
		{"long meaning", func(c *Card) { c.Meaning = strings.Repeat("あ", MaxTextLength+1) }, ErrTextTooLong},
		{"long etymology", func(c *Card) { c.Etymology = strPtr(strings.Repeat("x", MaxTextLength+1)) }, ErrTextTooLong},
		{"long image path", func(c *Card) { c.ImagePath = strPtr(strings.Repeat("x", MaxImagePathLength+1)) }, ErrImagePathTooLong},
		{"level below zero", func(c *Card) { c.SavingsScore = -1 }, ErrSavingsScore},
		{"level above seven", func(c *Card) { c.SavingsScore = 8 }, ErrSavingsScore},
		{"level seven", func(c *Card) { c.SavingsScore = MaxLevel }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCardIsDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	past, future := now.Add(-time.Second), now.Add(time.Second)

	assert.False(t, (&Card{}).IsDue(now), "never scheduled")
	assert.True(t, (&Card{NextAnswerDate: &past}).IsDue(now))
	assert.False(t, (&Card{NextAnswerDate: &now}).IsDue(now), "strictly earlier only")
	assert.False(t, (&Card{NextAnswerDate: &future}).IsDue(now))
}
