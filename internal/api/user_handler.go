package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/oblivion-api/internal/api/shared"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/service"
)

// UserHandler serves the authenticated user's profile, interval table and
// answer summary.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	if users == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("user service cannot be nil for UserHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// GetProfile handles GET /api/user.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	user, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToProfile(user))
}

// GetSettings handles GET /api/user/settings.
func (h *UserHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	settings, err := h.users.GetSettings(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, settingsToResponse(settings))
}

// UpdateSettings handles PUT /api/user/settings. Each level is given as
// months, days and hours and stored in seconds.
func (h *UserHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	settings, err := h.users.UpdateSettings(r.Context(), userID, req.Specs())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("interval table updated")
	shared.RespondWithJSON(w, r, http.StatusOK, settingsToResponse(settings))
}

// GetSummary handles GET /api/user/summary.
func (h *UserHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	summary, err := h.users.GetSummary(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, summaryToResponse(summary))
}
