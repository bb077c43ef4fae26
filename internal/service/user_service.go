package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/domain/srs"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// UserService provides the authenticated user's profile, interval table and
// answer summary.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)

	// UpdateSettings converts each calendar interval to seconds against the
	// current time and stores all seven in one write. Nothing is stored when
	// any interval is invalid.
	UpdateSettings(
		ctx context.Context,
		userID uuid.UUID,
		specs [domain.LevelCount]domain.IntervalSpec,
	) (*domain.UserSettings, error)

	GetSummary(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	users     store.UserStore
	settings  store.UserSettingsStore
	summaries store.UserSummaryStore
	scheduler srs.Service
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	users store.UserStore,
	settings store.UserSettingsStore,
	summaries store.UserSummaryStore,
	scheduler srs.Service,
	logger *slog.Logger,
) (UserService, error) {
	for _, dep := range []struct {
		name  string
		isNil bool
	}{
		{"userStore", users == nil},
		{"settingsStore", settings == nil},
		{"summaryStore", summaries == nil},
		{"scheduler", scheduler == nil},
	} {
		if err := requireDep(dep.name, dep.isNil); err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		users:     users,
		settings:  settings,
		summaries: summaries,
		scheduler: scheduler,
		logger:    logger.With(slog.String("component", "user_service")),
	}, nil
}

func userError(op string, err error) error {
	return NewServiceError("user", op, err)
}

// GetProfile returns the user record.
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logFailure(ctx, "failed to retrieve user", userID, err)
		return nil, userError("get_profile", err)
	}
	return user, nil
}

// GetSettings returns the user's interval table.
func (s *UserServiceImpl) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		s.logFailure(ctx, "failed to retrieve settings", userID, err)
		return nil, userError("get_settings", err)
	}
	return settings, nil
}

// UpdateSettings implements UserService.UpdateSettings.
func (s *UserServiceImpl) UpdateSettings(
	ctx context.Context,
	userID uuid.UUID,
	specs [domain.LevelCount]domain.IntervalSpec,
) (*domain.UserSettings, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// One reference instant for all levels, so "1 month" means the same thing in each.
	ref := s.scheduler.Now()
	settings := &domain.UserSettings{UserID: userID}
	for i, spec := range specs {
		seconds, err := srs.CalendarSeconds(ref, spec)
		if err != nil {
			field := fmt.Sprintf("levels[%d]", i)
			return nil, userError("update_settings",
				domain.NewValidationError(field, "is not a valid interval", err))
		}
		settings.Intervals[i] = seconds
	}

	if err := s.settings.Update(ctx, settings); err != nil {
		s.logFailure(ctx, "failed to update settings", userID, err)
		return nil, userError("update_settings", err)
	}

	log.Info("interval table updated",
		slog.String("user_id", userID.String()),
		slog.Any("intervals", settings.Intervals))
	return settings, nil
}

// GetSummary returns the user's answer counters and login streak.
func (s *UserServiceImpl) GetSummary(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error) {
	summary, err := s.summaries.Get(ctx, userID)
	if err != nil {
		s.logFailure(ctx, "failed to retrieve summary", userID, err)
		return nil, userError("get_summary", err)
	}
	return summary, nil
}

func (s *UserServiceImpl) logFailure(ctx context.Context, msg string, userID uuid.UUID, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if store.IsNotFoundError(err) {
		log.Debug(msg, slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		return
	}
	log.Error(msg, slog.String("user_id", userID.String()), slog.String("error", err.Error()))
}
