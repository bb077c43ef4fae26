package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/api/shared"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)

// newRequest builds a JSON request. A non-nil userID is placed in the
// context as the authenticated user; params become chi URL params.
func newRequest(
	t *testing.T,
	method, target string,
	body any,
	userID uuid.UUID,
	params map[string]string,
) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	ctx := context.WithValue(req.Context(), shared.TraceIDKey, "test-trace")
	if userID != uuid.Nil {
		ctx = shared.WithUserID(ctx, userID)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func idParam(id uuid.UUID) map[string]string {
	return map[string]string{"id": id.String()}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func testDeck(userID uuid.UUID, name string) *domain.Deck {
	return &domain.Deck{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func testCard(userID, deckID uuid.UUID, level int) *domain.Card {
	next := testNow.Add(24 * time.Hour)
	return &domain.Card{
		ID:             uuid.New(),
		UserID:         userID,
		DeckID:         deckID,
		Sentence:       "Der Hund bellt.",
		Meaning:        "The dog barks.",
		SavingsScore:   level,
		NextAnswerDate: &next,
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
	}
}
