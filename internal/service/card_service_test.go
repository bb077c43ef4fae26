package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/mocks"
	"github.com/phrazzld/oblivion-api/internal/service"
	"github.com/phrazzld/oblivion-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cardFixture struct {
	owner    uuid.UUID
	deck     *domain.Deck
	cards    *mocks.MockCardStore
	decks    *mocks.MockDeckStore
	settings *mocks.MockUserSettingsStore
	svc      service.CardService
}

func newCardFixture(t *testing.T) *cardFixture {
	t.Helper()
	owner := uuid.New()
	deck := deckOf(owner)
	f := &cardFixture{
		owner:    owner,
		deck:     deck,
		cards:    &mocks.MockCardStore{},
		decks:    &mocks.MockDeckStore{Deck: deck},
		settings: &mocks.MockUserSettingsStore{Settings: domain.NewUserSettings(owner)},
	}
	svc, err := service.NewCardService(f.cards, f.decks, f.settings, fixedScheduler(), testLogger())
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestNewCardService_NilDependencies(t *testing.T) {
	t.Parallel()

	_, err := service.NewCardService(nil, &mocks.MockDeckStore{}, &mocks.MockUserSettingsStore{}, fixedScheduler(), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.NewCardService(&mocks.MockCardStore{}, &mocks.MockDeckStore{}, &mocks.MockUserSettingsStore{}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCardService_Create(t *testing.T) {
	t.Parallel()

	t.Run("schedules first review one level-one interval ahead", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		var saved *domain.Card
		f.cards.CreateFn = func(ctx context.Context, card *domain.Card) error {
			saved = card
			return nil
		}

		card, err := f.svc.Create(context.Background(), f.owner, f.deck.ID, domain.CardContent{
			Sentence: "忘却の彼方",
			Meaning:  "beyond oblivion",
		})

		require.NoError(t, err)
		assert.Same(t, card, saved)
		assert.Equal(t, domain.UnansweredLevel, card.SavingsScore)
		require.NotNil(t, card.NextAnswerDate)
		assert.Equal(t, testNow.Add(86400*time.Second), *card.NextAnswerDate)
		assert.Nil(t, card.PreviousAnswerDate)
	})

	t.Run("uses the owner's level-one interval", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.settings.Settings.Intervals[0] = 3600

		card, err := f.svc.Create(context.Background(), f.owner, f.deck.ID, domain.CardContent{Sentence: "s", Meaning: "m"})

		require.NoError(t, err)
		assert.Equal(t, testNow.Add(time.Hour), *card.NextAnswerDate)
	})

	t.Run("foreign deck", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.cards.CreateFn = func(context.Context, *domain.Card) error {
			t.Fatal("card must not be stored")
			return nil
		}

		_, err := f.svc.Create(context.Background(), uuid.New(), f.deck.ID, domain.CardContent{Sentence: "s", Meaning: "m"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing deck", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.decks.Deck = nil

		_, err := f.svc.Create(context.Background(), f.owner, uuid.New(), domain.CardContent{Sentence: "s", Meaning: "m"})
		assert.ErrorIs(t, err, store.ErrDeckNotFound)
	})

	t.Run("invalid content", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)

		_, err := f.svc.Create(context.Background(), f.owner, f.deck.ID, domain.CardContent{Meaning: "m"})
		assert.ErrorIs(t, err, domain.ErrSentenceEmpty)
	})

	t.Run("missing settings", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.settings.Settings = nil

		_, err := f.svc.Create(context.Background(), f.owner, f.deck.ID, domain.CardContent{Sentence: "s", Meaning: "m"})
		assert.ErrorIs(t, err, store.ErrSettingsNotFound)
	})
}

func TestCardService_DueCards(t *testing.T) {
	t.Parallel()

	f := newCardFixture(t)
	due := cardIn(f.deck)
	f.cards.ListDueFn = func(ctx context.Context, deckID uuid.UUID, now time.Time) ([]*domain.Card, error) {
		assert.Equal(t, f.deck.ID, deckID)
		assert.Equal(t, testNow, now, "uses the scheduler clock")
		return []*domain.Card{due}, nil
	}

	cards, err := f.svc.DueCards(context.Background(), f.owner, f.deck.ID)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Card{due}, cards)

	_, err = f.svc.DueCards(context.Background(), uuid.New(), f.deck.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCardService_ListByDeck(t *testing.T) {
	t.Parallel()

	f := newCardFixture(t)
	f.cards.Cards = []*domain.Card{cardIn(f.deck), cardIn(f.deck)}

	cards, err := f.svc.ListByDeck(context.Background(), f.owner, f.deck.ID)
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	_, err = f.svc.ListByDeck(context.Background(), uuid.New(), f.deck.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCardService_Update(t *testing.T) {
	t.Parallel()

	t.Run("replaces content", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.cards.Card = cardIn(f.deck)
		etymology := "from Old French"
		var written *domain.Card
		f.cards.UpdateContentFn = func(ctx context.Context, card *domain.Card) error {
			written = card
			return nil
		}

		card, err := f.svc.Update(context.Background(), f.owner, f.cards.Card.ID, domain.CardContent{
			Sentence:  "new sentence",
			Meaning:   "new meaning",
			Etymology: &etymology,
		})

		require.NoError(t, err)
		assert.Same(t, card, written)
		assert.Equal(t, "new sentence", card.Sentence)
		assert.Equal(t, "new meaning", card.Meaning)
		require.NotNil(t, card.Etymology)
		assert.Equal(t, etymology, *card.Etymology)
	})

	t.Run("rejects empty meaning", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.cards.Card = cardIn(f.deck)
		f.cards.UpdateContentFn = func(context.Context, *domain.Card) error {
			t.Fatal("invalid content must not be written")
			return nil
		}

		_, err := f.svc.Update(context.Background(), f.owner, f.cards.Card.ID, domain.CardContent{Sentence: "s"})
		assert.ErrorIs(t, err, domain.ErrMeaningEmpty)
	})

	t.Run("other user's card", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.cards.Card = cardIn(f.deck)

		_, err := f.svc.Update(context.Background(), uuid.New(), f.cards.Card.ID, domain.CardContent{Sentence: "s", Meaning: "m"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Equal(t, "忘却", f.cards.Card.Sentence, "card is left untouched")
	})
}

func TestCardService_GetAndDelete(t *testing.T) {
	t.Parallel()

	f := newCardFixture(t)
	card := cardIn(f.deck)
	f.cards.Card = card
	deleted := uuid.Nil
	f.cards.DeleteFn = func(ctx context.Context, id uuid.UUID) error {
		deleted = id
		return nil
	}
	ctx := context.Background()

	got, err := f.svc.Get(ctx, f.owner, card.ID)
	require.NoError(t, err)
	assert.Same(t, card, got)

	_, err = f.svc.Get(ctx, uuid.New(), card.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.Error(t, f.svc.Delete(ctx, uuid.New(), card.ID))
	assert.Equal(t, uuid.Nil, deleted)

	require.NoError(t, f.svc.Delete(ctx, f.owner, card.ID))
	assert.Equal(t, card.ID, deleted)

	f.cards.Card = nil
	_, err = f.svc.Get(ctx, f.owner, card.ID)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}
