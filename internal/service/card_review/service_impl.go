package card_review

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/domain/srs"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	cards     store.CardStore
	settings  store.UserSettingsStore
	summaries store.UserSummaryStore
	scheduler srs.Service
	runTx     store.TxRunner
	logger    *slog.Logger
}

// NewService creates a new card review Service.
// It panics if any dependency other than logger is nil.
func NewService(
	cards store.CardStore,
	settings store.UserSettingsStore,
	summaries store.UserSummaryStore,
	scheduler srs.Service,
	runTx store.TxRunner,
	logger *slog.Logger,
) Service {
	switch {
	case cards == nil:
		panic("cards cannot be nil")
	case settings == nil:
		panic("settings cannot be nil")
	case summaries == nil:
		panic("summaries cannot be nil")
	case scheduler == nil:
		panic("scheduler cannot be nil")
	case runTx == nil:
		panic("runTx cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		cards:     cards,
		settings:  settings,
		summaries: summaries,
		scheduler: scheduler,
		runTx:     runTx,
		logger:    logger.With(slog.String("component", "card_review_service")),
	}
}

// RecordAnswer implements Service.RecordAnswer.
func (s *serviceImpl) RecordAnswer(
	ctx context.Context,
	userID, cardID uuid.UUID,
	isCorrect bool,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()))

	log.Debug("processing answer", slog.Bool("is_correct", isCorrect))

	var (
		updated *domain.Card
		outcome srs.Outcome
	)
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		cards := s.cards.WithTx(tx)
		summaries := s.summaries.WithTx(tx)

		card, err := cards.GetForUpdate(ctx, cardID)
		if err != nil {
			return NewRecordAnswerError("failed to load card", err)
		}
		if err := domain.AssertOwnsOrForbidden(card, userID); err != nil {
			log.Warn("answer to card of another user rejected",
				slog.String("owner_id", card.UserID.String()))
			return NewRecordAnswerError("card not owned by user", err)
		}

		settings, err := s.settings.WithTx(tx).Get(ctx, userID)
		if err != nil {
			return NewRecordAnswerError("failed to load interval table", err)
		}
		summary, err := summaries.GetForUpdate(ctx, userID)
		if err != nil {
			return NewRecordAnswerError("failed to load summary", err)
		}

		outcome, err = s.scheduler.ApplyAnswer(card, settings, summary, isCorrect)
		if err != nil {
			return NewRecordAnswerError("failed to apply answer", err)
		}

		if err := cards.UpdateSchedule(ctx, card); err != nil {
			return NewRecordAnswerError("failed to save card", err)
		}
		if outcome.CountsAnswer {
			if err := summaries.Update(ctx, summary); err != nil {
				return NewRecordAnswerError("failed to save summary", err)
			}
		}

		updated = card
		return nil
	})
	if err != nil {
		switch {
		case store.IsNotFoundError(err):
			log.Debug("answer rejected", slog.String("error", err.Error()))
		case errors.Is(err, domain.ErrForbidden):
			// logged inside the transaction with the owner
		default:
			log.Error("failed to record answer", slog.String("error", err.Error()))
		}
		var svcErr *ServiceError
		if !errors.As(err, &svcErr) {
			err = NewRecordAnswerError("transaction failed", err)
		}
		return nil, err
	}

	attrs := []any{
		slog.Int("level", updated.SavingsScore),
		slog.Bool("retained", updated.RetentionState),
	}
	if outcome.Reschedule {
		attrs = append(attrs, slog.Time("next_answer_date", *updated.NextAnswerDate))
	}
	log.Info("answer recorded", attrs...)
	return updated, nil
}
