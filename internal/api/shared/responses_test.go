package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tracedRequest returns a GET request whose context carries a trace ID and a
// capturing logger.
func tracedRequest(t *testing.T) (*http.Request, *logger.TestLogBuffer) {
	t.Helper()
	log, buf := logger.NewTestLogger(t)
	ctx := context.WithValue(context.Background(), TraceIDKey, "test-trace-id")
	ctx = logger.WithLogger(ctx, log)
	return httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx), buf
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		data     any
		wantBody string
	}{
		{name: "object", status: http.StatusOK, data: map[string]any{"name": "deck"}, wantBody: `{"name":"deck"}`},
		{name: "empty object", status: http.StatusCreated, data: map[string]any{}, wantBody: `{}`},
		{name: "nil", status: http.StatusOK, data: nil, wantBody: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, _ := tracedRequest(t)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tt.status, tt.data)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	t.Parallel()

	req, buf := tracedRequest(t)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	req, _ := tracedRequest(t)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request", body.Error)
	assert.Equal(t, "test-trace-id", body.TraceID)
	assert.Empty(t, body.Hint)
}

func TestRespondWithErrorNoTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusUnauthorized, "Unauthorized")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["error"])
	assert.NotContains(t, body, "trace_id")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		message   string
		err       error
		opts      []ResponseOption
		wantLevel string
	}{
		{
			name:      "server error",
			status:    http.StatusInternalServerError,
			message:   "An unexpected error occurred",
			err:       errors.New("connection refused"),
			wantLevel: "ERROR",
		},
		{
			name:      "client error",
			status:    http.StatusBadRequest,
			message:   "Bad request",
			err:       errors.New("invalid input"),
			wantLevel: "DEBUG",
		},
		{
			name:      "client error elevated",
			status:    http.StatusForbidden,
			message:   "Forbidden",
			err:       errors.New("not the owner"),
			opts:      []ResponseOption{WithElevatedLogLevel()},
			wantLevel: "WARN",
		},
		{
			name:      "rate limited",
			status:    http.StatusTooManyRequests,
			message:   "Too many requests",
			err:       errors.New("rate limit exceeded"),
			wantLevel: "WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, buf := tracedRequest(t)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tt.status, tt.message, tt.err, tt.opts...)

			assert.Equal(t, tt.status, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
			assert.Equal(t, "test-trace-id", body.TraceID)
			assert.NotContains(t, w.Body.String(), tt.err.Error(), "raw error must not leak")

			entries, err := buf.Entries()
			require.NoError(t, err)
			require.NotEmpty(t, entries)
			var found bool
			for _, e := range entries {
				if e["msg"] == "API error response" {
					found = true
					assert.Equal(t, tt.wantLevel, e["level"])
					assert.Equal(t, "test-trace-id", e["trace_id"])
					assert.Contains(t, e, "error_type")
				}
			}
			assert.True(t, found, "expected an API error response log entry")
		})
	}
}

func TestRespondWithErrorAndLogHint(t *testing.T) {
	t.Parallel()

	req, _ := tracedRequest(t)
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, req, http.StatusBadGateway, "Failed to send", errors.New("ses down"),
		WithHint("retry later"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "retry later", body.Hint)
}
