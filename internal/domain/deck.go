package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Deck-specific validation errors
var (
	ErrDeckIDEmpty     = fmt.Errorf("%w: deck ID cannot be empty", ErrValidation)
	ErrDeckUserIDEmpty = fmt.Errorf("%w: deck user ID cannot be empty", ErrValidation)
	ErrDeckNameEmpty   = fmt.Errorf("%w: deck name cannot be empty", ErrValidation)
)

// Deck groups cards for one user. Deleting a deck deletes its cards.
type Deck struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeckWithCardCount is a deck together with the number of cards it holds.
type DeckWithCardCount struct {
	Deck
	CardCount int `json:"card_count"`
}

// NewDeck creates a deck named name for user.
func NewDeck(userID uuid.UUID, name string) (*Deck, error) {
	deck := &Deck{
		ID:     uuid.New(),
		UserID: userID,
	}
	if err := deck.Rename(name); err != nil {
		return nil, err
	}
	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return deck, nil
}

// Rename sets a new name after validating it.
func (d *Deck) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrDeckNameEmpty
	}
	if tooLong(name, MaxTextLength) {
		return ErrTextTooLong
	}
	d.Name = name
	return nil
}

// Validate checks if the Deck has valid data.
func (d *Deck) Validate() error {
	switch {
	case d.ID == uuid.Nil:
		return ErrDeckIDEmpty
	case d.UserID == uuid.Nil:
		return ErrDeckUserIDEmpty
	case d.Name == "":
		return ErrDeckNameEmpty
	case tooLong(d.Name, MaxTextLength):
		return ErrTextTooLong
	}
	return nil
}

// OwnerID implements Owned.
func (d *Deck) OwnerID() uuid.UUID {
	if d == nil {
		return uuid.Nil
	}
	return d.UserID
}
