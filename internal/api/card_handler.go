package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/oblivion-api/internal/api/shared"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/service"
	"github.com/phrazzld/oblivion-api/internal/service/card_review"
)

// CardHandler handles card-related HTTP requests, including answers.
type CardHandler struct {
	cards   service.CardService
	reviews card_review.Service
	logger  *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(
	cards service.CardService,
	reviews card_review.Service,
	logger *slog.Logger,
) *CardHandler {
	if cards == nil || reviews == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("card service and card review service are required for CardHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CardHandler{
		cards:   cards,
		reviews: reviews,
		logger:  logger.With(slog.String("component", "card_handler")),
	}
}

// ListByDeck handles GET /api/decks/{id}/cards.
func (h *CardHandler) ListByDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, deckID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	cards, err := h.cards.ListByDeck(r.Context(), userID, deckID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// ListDue handles GET /api/decks/{id}/cards/due: the cards of the deck whose
// next answer date has passed.
func (h *CardHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, deckID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	cards, err := h.cards.DueCards(r.Context(), userID, deckID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// Create handles POST /api/decks/{id}/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, deckID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req CardRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	card, err := h.cards.Create(r.Context(), userID, deckID, req.Content())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", deckID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// Get handles GET /api/cards/{id}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, cardID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	card, err := h.cards.Get(r.Context(), userID, cardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// Update handles PUT /api/cards/{id}. The schedule is left untouched.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, cardID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req CardRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	card, err := h.cards.Update(r.Context(), userID, cardID, req.Content())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// Delete handles DELETE /api/cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, cardID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.cards.Delete(r.Context(), userID, cardID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondNoContent(w, http.StatusNoContent)
}

// SubmitAnswer handles POST /api/cards/{id}/answer. It records the answer
// and returns the card with its new schedule.
func (h *CardHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, cardID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req AnswerRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	card, err := h.reviews.RecordAnswer(r.Context(), userID, cardID, *req.IsCorrect)
	if err != nil {
		message := ""
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			message = "Failed to submit answer"
		}
		HandleAPIError(w, r, err, message)
		return
	}

	log.Debug("answer recorded",
		slog.String("card_id", card.ID.String()),
		slog.Int("savings_score", card.SavingsScore),
		slog.Bool("is_correct", *req.IsCorrect))
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}
