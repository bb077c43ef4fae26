package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
		want       HealthResponse
	}{
		{
			name:       "no database",
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ok", Database: "skipped"},
		},
		{
			name:       "database reachable",
			db:         pingFunc(func(context.Context) error { return nil }),
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ok", Database: "ok"},
		},
		{
			name:       "database down",
			db:         pingFunc(func(context.Context) error { return errors.New("connection refused") }),
			wantStatus: http.StatusServiceUnavailable,
			want:       HealthResponse{Status: "unavailable", Database: "unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			NewHealthHandler(tt.db, nil).ServeHTTP(rec, newRequest(t, http.MethodGet, "/health", nil, uuid.Nil, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.want, decodeBody[HealthResponse](t, rec))
		})
	}
}
