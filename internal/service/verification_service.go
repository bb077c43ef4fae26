package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/domain/srs"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/service/auth"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// VerificationService covers the account lifecycle up to a successful login:
// signup, email verification with a six-digit code, code re-issue and
// credential checks. Delivering codes is left to the caller, which receives
// every newly stored verification.
type VerificationService interface {
	// Signup creates an inactive user with default settings, an empty summary
	// and a pending verification code, all in one transaction.
	Signup(ctx context.Context, username, email, password string) (*domain.User, *domain.Verification, error)

	// Verify activates the user when code matches the pending one. On a
	// mismatch a fresh code is stored and returned together with
	// ErrVerificationMismatch.
	Verify(ctx context.Context, email, code string) (*domain.User, *domain.Verification, error)

	// Resend replaces the pending code of an inactive user.
	Resend(ctx context.Context, email string) (*domain.Verification, error)

	// Login checks the password, requires an active user and advances the
	// login streak.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// VerificationDeps lists the collaborators of the verification service.
type VerificationDeps struct {
	Users         store.UserStore
	Settings      store.UserSettingsStore
	Summaries     store.UserSummaryStore
	Verifications store.VerificationStore
	Hasher        auth.PasswordHasher
	Verifier      auth.PasswordVerifier
	Codes         auth.CodeGenerator
	Scheduler     srs.Service
	RunTx         store.TxRunner
}

type verificationServiceImpl struct {
	VerificationDeps
	logger *slog.Logger
}

// NewVerificationService creates a VerificationService.
// It returns an error if any dependency is nil.
func NewVerificationService(deps VerificationDeps, logger *slog.Logger) (VerificationService, error) {
	for _, dep := range []struct {
		name  string
		isNil bool
	}{
		{"userStore", deps.Users == nil},
		{"settingsStore", deps.Settings == nil},
		{"summaryStore", deps.Summaries == nil},
		{"verificationStore", deps.Verifications == nil},
		{"passwordHasher", deps.Hasher == nil},
		{"passwordVerifier", deps.Verifier == nil},
		{"codeGenerator", deps.Codes == nil},
		{"scheduler", deps.Scheduler == nil},
		{"runTx", deps.RunTx == nil},
	} {
		if err := requireDep(dep.name, dep.isNil); err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &verificationServiceImpl{
		VerificationDeps: deps,
		logger:           logger.With(slog.String("component", "verification_service")),
	}, nil
}

func authError(op string, err error) error {
	return NewServiceError("auth", op, err)
}

func (s *verificationServiceImpl) newVerification(email string) (*domain.Verification, error) {
	code, err := s.Codes.Generate()
	if err != nil {
		return nil, err
	}
	return domain.NewVerification(email, code)
}

func (s *verificationServiceImpl) Signup(
	ctx context.Context,
	username, email, password string,
) (*domain.User, *domain.Verification, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(username, email, password)
	if err != nil {
		return nil, nil, authError("signup", err)
	}

	hashed, err := s.Hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, nil, authError("signup", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	verification, err := s.newVerification(user.Email)
	if err != nil {
		log.Error("failed to create verification code", slog.String("error", err.Error()))
		return nil, nil, authError("signup", err)
	}

	err = s.RunTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.Users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		if err := s.Settings.WithTx(tx).Create(ctx, domain.NewUserSettings(user.ID)); err != nil {
			return err
		}
		if err := s.Summaries.WithTx(tx).Create(ctx, domain.NewUserSummary(user.ID)); err != nil {
			return err
		}
		return s.Verifications.WithTx(tx).Upsert(ctx, verification)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("signup with registered email")
		} else {
			log.Error("failed to register user", slog.String("error", err.Error()))
		}
		return nil, nil, authError("signup", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, verification, nil
}

func (s *verificationServiceImpl) Verify(
	ctx context.Context,
	email, code string,
) (*domain.User, *domain.Verification, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	email = domain.NormalizeEmail(email)

	if !domain.IsWellFormedCode(code) {
		return nil, nil, authError("verify", domain.ErrInvalidCode)
	}

	var (
		user     *domain.User
		reissued *domain.Verification
	)
	err := s.RunTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		verifications := s.Verifications.WithTx(tx)

		pending, err := verifications.Get(ctx, email)
		if err != nil {
			return err
		}

		if !pending.Matches(code) {
			// The replacement is committed; the mismatch is reported afterwards.
			reissued, err = s.newVerification(email)
			if err != nil {
				return err
			}
			return verifications.Upsert(ctx, reissued)
		}

		if err := verifications.Delete(ctx, email); err != nil {
			return err
		}
		users := s.Users.WithTx(tx)
		if err := users.Activate(ctx, email); err != nil {
			return err
		}
		user, err = users.GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to verify email", slog.String("error", err.Error()))
		}
		return nil, nil, authError("verify", err)
	}

	if reissued != nil {
		log.Info("verification code mismatch, new code issued")
		return nil, reissued, authError("verify", ErrVerificationMismatch)
	}

	log.Info("user verified", slog.String("user_id", user.ID.String()))
	return user, nil, nil
}

func (s *verificationServiceImpl) Resend(ctx context.Context, email string) (*domain.Verification, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	email = domain.NormalizeEmail(email)

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, authError("resend", err)
	}
	if user.IsActive {
		return nil, authError("resend", ErrAlreadyVerified)
	}

	verification, err := s.newVerification(email)
	if err != nil {
		return nil, authError("resend", err)
	}
	if err := s.Verifications.Upsert(ctx, verification); err != nil {
		log.Error("failed to store verification code", slog.String("error", err.Error()))
		return nil, authError("resend", err)
	}

	log.Info("verification code reissued", slog.String("user_id", user.ID.String()))
	return verification, nil
}

func (s *verificationServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.Users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, authError("login", err)
	}

	// Inactive accounts are reported only after the password matched.
	if err := s.Verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("password mismatch", slog.String("user_id", user.ID.String()))
		return nil, authError("login", ErrInvalidCredentials)
	}
	if !user.IsActive {
		return nil, authError("login", ErrUserInactive)
	}

	err = s.RunTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		summaries := s.Summaries.WithTx(tx)
		summary, err := summaries.GetForUpdate(ctx, user.ID)
		if err != nil {
			return err
		}
		summary.RecordLogin(s.Scheduler.Now())
		return summaries.Update(ctx, summary)
	})
	if err != nil {
		log.Error("failed to record login",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, authError("login", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return user, nil
}
