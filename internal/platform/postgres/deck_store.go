package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// PostgresDeckStore implements store.DeckStore.
type PostgresDeckStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDeckStore creates a deck store on db. If logger is nil, a
// default logger will be used.
func NewPostgresDeckStore(db store.DBTX, logger *slog.Logger) *PostgresDeckStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresDeckStore{
		db:     db,
		logger: defaultLogger(logger, "deck_store"),
	}
}

var _ store.DeckStore = (*PostgresDeckStore)(nil)

// WithTx implements store.DeckStore.WithTx
func (s *PostgresDeckStore) WithTx(tx *sql.Tx) store.DeckStore {
	return &PostgresDeckStore{db: tx, logger: s.logger}
}

// Create implements store.DeckStore.Create
func (s *PostgresDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := deck.Validate(); err != nil {
		log.Warn("deck validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO decks (id, user_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`, deck.ID, deck.UserID, deck.Name).Scan(&deck.CreatedAt, &deck.UpdatedAt)
	if err != nil {
		log.Error("failed to create deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", deck.ID.String()))
		return MapError(err)
	}

	log.Debug("deck created", slog.String("deck_id", deck.ID.String()))
	return nil
}

// GetByID implements store.DeckStore.GetByID
func (s *PostgresDeckStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	var deck domain.Deck
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM decks
		WHERE id = $1
	`, id).Scan(&deck.ID, &deck.UserID, &deck.Name, &deck.CreatedAt, &deck.UpdatedAt)
	if err != nil {
		return nil, mapEntityError(err, store.ErrDeckNotFound)
	}
	return &deck, nil
}

// ListByUser implements store.DeckStore.ListByUser
func (s *PostgresDeckStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM decks
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		log.Error("failed to list decks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer closeRows(rows, log)

	decks := []*domain.Deck{}
	for rows.Next() {
		var deck domain.Deck
		if err := rows.Scan(&deck.ID, &deck.UserID, &deck.Name, &deck.CreatedAt, &deck.UpdatedAt); err != nil {
			log.Error("failed to scan deck row", slog.String("error", err.Error()))
			return nil, err
		}
		decks = append(decks, &deck)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return decks, nil
}

// ListWithCardCounts implements store.DeckStore.ListWithCardCounts
func (s *PostgresDeckStore) ListWithCardCounts(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.DeckWithCardCount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.user_id, d.name, d.created_at, d.updated_at, COUNT(c.id)
		FROM decks d
		LEFT JOIN cards c ON c.deck_id = d.id
		WHERE d.user_id = $1
		GROUP BY d.id
		ORDER BY d.created_at, d.id
	`, userID)
	if err != nil {
		log.Error("failed to list decks with counts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer closeRows(rows, log)

	decks := []*domain.DeckWithCardCount{}
	for rows.Next() {
		var d domain.DeckWithCardCount
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.CreatedAt, &d.UpdatedAt, &d.CardCount); err != nil {
			log.Error("failed to scan deck count row", slog.String("error", err.Error()))
			return nil, err
		}
		decks = append(decks, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return decks, nil
}

// UpdateName implements store.DeckStore.UpdateName
func (s *PostgresDeckStore) UpdateName(ctx context.Context, deck *domain.Deck) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := deck.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		UPDATE decks
		SET name = $1, updated_at = now()
		WHERE id = $2
		RETURNING updated_at
	`, deck.Name, deck.ID).Scan(&deck.UpdatedAt)
	if err != nil {
		mapped := mapEntityError(err, store.ErrDeckNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to rename deck",
				slog.String("error", err.Error()),
				slog.String("deck_id", deck.ID.String()))
		}
		return mapped
	}
	return nil
}

// Delete implements store.DeckStore.Delete
func (s *PostgresDeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM decks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", id.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrDeckNotFound)
}
