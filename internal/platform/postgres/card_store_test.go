package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardColumnNames = []string{
	"id", "user_id", "deck_id", "sentence", "meaning", "image_path", "etymology",
	"savings_score", "retention_state", "previous_answer_date", "next_answer_date",
	"created_at", "updated_at",
}

func testCard() *domain.Card {
	next := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	return &domain.Card{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		DeckID:         uuid.New(),
		Sentence:       "忘却の彼方",
		Meaning:        "beyond oblivion",
		NextAnswerDate: &next,
	}
}

func cardRow(rows *sqlmock.Rows, c *domain.Card, created time.Time) *sqlmock.Rows {
	var prev, next any
	if c.PreviousAnswerDate != nil {
		prev = *c.PreviousAnswerDate
	}
	if c.NextAnswerDate != nil {
		next = *c.NextAnswerDate
	}
	return rows.AddRow(
		c.ID.String(), c.UserID.String(), c.DeckID.String(), c.Sentence, c.Meaning, nil, nil,
		c.SavingsScore, c.RetentionState, prev, next, created, created,
	)
}

func TestCardStoreCreate(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresCardStore(db, nil)
	card := testCard()
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("INSERT INTO cards")).
		WithArgs(card.ID, card.UserID, card.DeckID, card.Sentence, card.Meaning,
			sqlmock.AnyArg(), sqlmock.AnyArg(), 0, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	require.NoError(t, s.Create(context.Background(), card))
	assert.True(t, card.CreatedAt.Equal(created))
}

func TestCardStoreCreateMissingDeck(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresCardStore(db, nil)

	mock.ExpectQuery(q("INSERT INTO cards")).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "cards_deck_id_fkey"})

	err := s.Create(context.Background(), testCard())
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestCardStoreCreateRejectsInvalidCard(t *testing.T) {
	t.Parallel()

	db, _ := newMock(t)
	s := NewPostgresCardStore(db, nil)
	card := testCard()
	card.Meaning = ""

	assert.ErrorIs(t, s.Create(context.Background(), card), domain.ErrMeaningEmpty)
}

func TestCardStoreGet(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresCardStore(db, nil)
	card := testCard()
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("FROM cards WHERE id = $1")).
		WithArgs(card.ID).
		WillReturnRows(cardRow(sqlmock.NewRows(cardColumnNames), card, created))

	got, err := s.GetByID(context.Background(), card.ID)
	require.NoError(t, err)
	assert.Equal(t, card.ID, got.ID)
	assert.Equal(t, card.Sentence, got.Sentence)
	assert.Nil(t, got.ImagePath)
	assert.Nil(t, got.PreviousAnswerDate)
	require.NotNil(t, got.NextAnswerDate)
	assert.True(t, got.NextAnswerDate.Equal(*card.NextAnswerDate))
}

func TestCardStoreGetForUpdateLocksRow(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresCardStore(db, nil)
	id := uuid.New()

	mock.ExpectQuery(q("FROM cards WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(cardColumnNames))

	_, err := s.GetForUpdate(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestCardStoreListDue(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresCardStore(db, nil)
	deckID := uuid.New()
	now := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	first, second := testCard(), testCard()

	mock.ExpectQuery(q("WHERE deck_id = $1 AND next_answer_date < $2 ORDER BY next_answer_date")).
		WithArgs(deckID, now).
		WillReturnRows(cardRow(cardRow(sqlmock.NewRows(cardColumnNames), first, now), second, now))

	cards, err := s.ListDue(context.Background(), deckID, now)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, first.ID, cards[0].ID)
	assert.Equal(t, second.ID, cards[1].ID)
}

func TestCardStoreListByDeckEmpty(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresCardStore(db, nil)

	mock.ExpectQuery(q("WHERE deck_id = $1")).WillReturnRows(sqlmock.NewRows(cardColumnNames))

	cards, err := s.ListByDeck(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestCardStoreUpdateSchedule(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresCardStore(db, nil)
	card := testCard()
	card.SavingsScore = 4
	updated := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("UPDATE cards SET savings_score = $1")).
		WithArgs(4, false, sqlmock.AnyArg(), sqlmock.AnyArg(), card.ID).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))
	mock.ExpectQuery(q("UPDATE cards SET savings_score = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	require.NoError(t, s.UpdateSchedule(context.Background(), card))
	assert.True(t, card.UpdatedAt.Equal(updated))

	assert.ErrorIs(t, s.UpdateSchedule(context.Background(), testCard()), store.ErrCardNotFound)
}

func TestCardStoreDelete(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresCardStore(db, nil)
	id := uuid.New()

	mock.ExpectExec(q("DELETE FROM cards WHERE id = $1")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("DELETE FROM cards WHERE id = $1")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), id))
	assert.ErrorIs(t, s.Delete(context.Background(), id), store.ErrCardNotFound)
}

func TestCardStoreWithTx(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresCardStore(db, nil)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(q("DELETE FROM cards")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, s.WithTx(tx).Delete(context.Background(), id))
	require.NoError(t, tx.Rollback())
}
