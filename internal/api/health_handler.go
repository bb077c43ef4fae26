package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/oblivion-api/internal/api/shared"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
	logger  *slog.Logger
}

// NewHealthHandler creates a HealthHandler. A nil db skips the database check.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		db:      db,
		timeout: 2 * time.Second,
		logger:  logger.With(slog.String("component", "health_handler")),
	}
}

// ServeHTTP implements http.Handler.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Database: "skipped"}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			logger.FromContextOrDefault(r.Context(), h.logger).
				Error("database ping failed", slog.String("error", err.Error()))
			resp = HealthResponse{Status: "unavailable", Database: "unreachable"}
			shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, resp)
			return
		}
		resp.Database = "ok"
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
