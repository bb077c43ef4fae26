package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresCardStore{
		db:     db,
		logger: defaultLogger(logger, "card_store"),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

const cardColumns = `id, user_id, deck_id, sentence, meaning, image_path, etymology,
	savings_score, retention_state, previous_answer_date, next_answer_date,
	created_at, updated_at`

func scanCard(row rowScanner) (*domain.Card, error) {
	var c domain.Card
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.DeckID,
		&c.Sentence,
		&c.Meaning,
		&c.ImagePath,
		&c.Etymology,
		&c.SavingsScore,
		&c.RetentionState,
		&c.PreviousAnswerDate,
		&c.NextAnswerDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// WithTx implements store.CardStore.WithTx
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{db: tx, logger: s.logger}
}

// Create implements store.CardStore.Create.
// Returns store.ErrInvalidEntity if the deck or user does not exist.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during create",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return err
	}

	query := `
		INSERT INTO cards (
			id, user_id, deck_id, sentence, meaning, image_path, etymology,
			savings_score, retention_state, previous_answer_date, next_answer_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query,
		card.ID,
		card.UserID,
		card.DeckID,
		card.Sentence,
		card.Meaning,
		card.ImagePath,
		card.Etymology,
		card.SavingsScore,
		card.RetentionState,
		card.PreviousAnswerDate,
		card.NextAnswerDate,
	).Scan(&card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during card creation",
				slog.String("card_id", card.ID.String()),
				slog.String("deck_id", card.DeckID.String()))
		} else {
			log.Error("failed to create card",
				slog.String("error", err.Error()),
				slog.String("card_id", card.ID.String()))
		}
		return MapError(err)
	}

	log.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", card.DeckID.String()))
	return nil
}

// GetByID implements store.CardStore.GetByID
func (s *PostgresCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	return s.getOne(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id)
}

// GetForUpdate implements store.CardStore.GetForUpdate
func (s *PostgresCardStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	return s.getOne(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1 FOR UPDATE`, id)
}

func (s *PostgresCardStore) getOne(ctx context.Context, query string, id uuid.UUID) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		mapped := mapEntityError(err, store.ErrCardNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("card not found", slog.String("card_id", id.String()))
		} else {
			log.Error("failed to get card",
				slog.String("error", err.Error()),
				slog.String("card_id", id.String()))
		}
		return nil, mapped
	}
	return card, nil
}

// ListByDeck implements store.CardStore.ListByDeck
func (s *PostgresCardStore) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error) {
	return s.list(ctx, `
		SELECT `+cardColumns+`
		FROM cards
		WHERE deck_id = $1
		ORDER BY created_at, id
	`, deckID)
}

// ListDue implements store.CardStore.ListDue.
// NULL dates never compare less than now, so unscheduled cards are excluded.
func (s *PostgresCardStore) ListDue(ctx context.Context, deckID uuid.UUID, now time.Time) ([]*domain.Card, error) {
	return s.list(ctx, `
		SELECT `+cardColumns+`
		FROM cards
		WHERE deck_id = $1 AND next_answer_date < $2
		ORDER BY next_answer_date, id
	`, deckID, now)
}

func (s *PostgresCardStore) list(ctx context.Context, query string, args ...any) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query cards", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer closeRows(rows, log)

	cards := []*domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card row", slog.String("error", err.Error()))
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return cards, nil
}

// UpdateContent implements store.CardStore.UpdateContent
func (s *PostgresCardStore) UpdateContent(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		UPDATE cards
		SET sentence = $1, meaning = $2, image_path = $3, etymology = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`, card.Sentence, card.Meaning, card.ImagePath, card.Etymology, card.ID).Scan(&card.UpdatedAt)
	if err != nil {
		mapped := mapEntityError(err, store.ErrCardNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to update card content",
				slog.String("error", err.Error()),
				slog.String("card_id", card.ID.String()))
		}
		return mapped
	}
	return nil
}

// UpdateSchedule implements store.CardStore.UpdateSchedule
func (s *PostgresCardStore) UpdateSchedule(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(ctx, `
		UPDATE cards
		SET savings_score = $1,
			retention_state = $2,
			previous_answer_date = $3,
			next_answer_date = $4,
			updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`,
		card.SavingsScore,
		card.RetentionState,
		card.PreviousAnswerDate,
		card.NextAnswerDate,
		card.ID,
	).Scan(&card.UpdatedAt)
	if err != nil {
		mapped := mapEntityError(err, store.ErrCardNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to update card schedule",
				slog.String("error", err.Error()),
				slog.String("card_id", card.ID.String()))
		}
		return mapped
	}

	log.Debug("card schedule updated",
		slog.String("card_id", card.ID.String()),
		slog.Int("savings_score", card.SavingsScore),
		slog.Bool("retention_state", card.RetentionState))
	return nil
}

// Delete implements store.CardStore.Delete
func (s *PostgresCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCardNotFound)
}
