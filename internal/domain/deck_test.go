package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	deck, err := NewDeck(userID, "  JLPT N2 ")
	require.NoError(t, err)
	assert.Equal(t, "JLPT N2", deck.Name)
	assert.Equal(t, userID, deck.OwnerID())

	_, err = NewDeck(userID, "   ")
	assert.ErrorIs(t, err, ErrDeckNameEmpty)

	_, err = NewDeck(uuid.Nil, "name")
	assert.ErrorIs(t, err, ErrDeckUserIDEmpty)
}

func TestDeckRename(t *testing.T) {
	t.Parallel()

	deck := &Deck{ID: uuid.New(), UserID: uuid.New(), Name: "old"}

	require.NoError(t, deck.Rename("new"))
	assert.Equal(t, "new", deck.Name)

	assert.ErrorIs(t, deck.Rename(""), ErrDeckNameEmpty)
	assert.ErrorIs(t, deck.Rename(strings.Repeat("d", MaxTextLength+1)), ErrTextTooLong)
	assert.Equal(t, "new", deck.Name, "failed renames leave the name untouched")
}
