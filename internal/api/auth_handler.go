package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/api/shared"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/platform/mail"
	"github.com/phrazzld/oblivion-api/internal/redact"
	"github.com/phrazzld/oblivion-api/internal/service"
	"github.com/phrazzld/oblivion-api/internal/service/auth"
)

// ResendPath is where clients ask for a fresh verification code.
const ResendPath = "/api/auth/verification/resend"

const resendHint = "The verification email could not be sent. Request a new code at " + ResendPath

// AuthHandler serves signup, verification, login and token refresh.
type AuthHandler struct {
	verification service.VerificationService
	jwtService   auth.JWTService
	codeSender   mail.CodeSender
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	verification service.VerificationService,
	jwtService auth.JWTService,
	codeSender mail.CodeSender,
	logger *slog.Logger,
) *AuthHandler {
	if verification == nil || jwtService == nil || codeSender == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("verification service, JWT service and code sender are required for AuthHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		verification: verification,
		jwtService:   jwtService,
		codeSender:   codeSender,
		logger:       logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /api/auth/signup. The verification code is mailed
// after the user has been committed.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SignupRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	user, verification, err := h.verification.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := SignupResponse{ID: user.ID, Username: user.Username, Email: user.Email}
	if err := h.sendCode(r.Context(), log, verification); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadGateway,
			"User created but the verification email could not be sent", err,
			shared.WithHint(resendHint))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// Verify handles POST /api/auth/verification. A wrong code is replaced by
// a new one, which is mailed before the 400 is returned.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req VerifyRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	user, reissued, err := h.verification.Verify(r.Context(), req.Email, req.Code)
	if errors.Is(err, service.ErrVerificationMismatch) {
		var opts []shared.ResponseOption
		if sendErr := h.sendCode(r.Context(), log, reissued); sendErr != nil {
			opts = append(opts, shared.WithHint(resendHint))
		}
		HandleAPIError(w, r, err, "", opts...)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, VerifyResponse{Username: user.Username})
}

// Resend handles POST /api/auth/verification/resend.
func (h *AuthHandler) Resend(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ResendRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	verification, err := h.verification.Resend(r.Context(), req.Email)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.sendCode(r.Context(), log, verification); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadGateway,
			"The verification email could not be sent", err,
			shared.WithHint(resendHint))
		return
	}

	shared.RespondNoContent(w, http.StatusAccepted)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	user, err := h.verification.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var opts []shared.ResponseOption
		if errors.Is(err, service.ErrInvalidCredentials) {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		HandleAPIError(w, r, err, "", opts...)
		return
	}

	pair, err := h.jwtService.GenerateTokenPair(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate tokens",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tokenPairToResponse(pair))
}

// RefreshToken handles POST /api/auth/refresh. Only refresh tokens are accepted.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RefreshTokenRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status != http.StatusInternalServerError {
			status = http.StatusUnauthorized
		}
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err,
			shared.WithElevatedLogLevel())
		return
	}

	if claims == nil || claims.UserID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	pair, err := h.jwtService.GenerateTokenPair(r.Context(), claims.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	log.Debug("token pair refreshed", slog.String("user_id", claims.UserID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, tokenPairToResponse(pair))
}

// sendCode mails a committed verification code. Failures are logged and
// returned; the stored code stays valid.
func (h *AuthHandler) sendCode(ctx context.Context, log *slog.Logger, v *domain.Verification) error {
	if v == nil {
		return errors.New("no verification code to send")
	}
	if err := h.codeSender.SendVerificationCode(ctx, v.Email, v.Code); err != nil {
		log.Error("failed to send verification code", slog.String("error", redact.Error(err)))
		return err
	}
	return nil
}
