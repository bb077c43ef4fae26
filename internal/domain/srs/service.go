package srs

import (
	"errors"
	"time"

	"github.com/phrazzld/oblivion-api/internal/domain"
)

// Common errors
var (
	ErrNilCard     = errors.New("card cannot be nil")
	ErrNilSettings = errors.New("user settings cannot be nil")
	ErrNilSummary  = errors.New("user summary cannot be nil")
)

// Service defines the scheduling operations used by the application services.
type Service interface {
	// Now returns the current time in the configured zone.
	Now() time.Time

	// NextReviewTimestamp returns now plus deltaSeconds.
	NextReviewTimestamp(deltaSeconds int64) time.Time

	// CalendarSeconds converts a user-entered interval using now as reference.
	CalendarSeconds(spec domain.IntervalSpec) (int64, error)

	// ScheduleNew sets the first review date of an unanswered card.
	ScheduleNew(card *domain.Card, settings *domain.UserSettings) error

	// ApplyAnswer mutates card and summary for one answer and returns the
	// outcome. Nothing is mutated when an error is returned.
	ApplyAnswer(
		card *domain.Card,
		settings *domain.UserSettings,
		summary *domain.UserSummary,
		isCorrect bool,
	) (Outcome, error)
}

type defaultService struct {
	clock Clock
}

// NewService creates a scheduler reading time from clock.
// A nil clock falls back to a UTC wall clock.
func NewService(clock Clock) Service {
	if clock == nil {
		clock = NewZonedClock(time.UTC)
	}
	return &defaultService{clock: clock}
}

func (s *defaultService) Now() time.Time {
	return s.clock.Now()
}

func (s *defaultService) NextReviewTimestamp(deltaSeconds int64) time.Time {
	return s.clock.Now().Add(time.Duration(deltaSeconds) * time.Second)
}

func (s *defaultService) CalendarSeconds(spec domain.IntervalSpec) (int64, error) {
	return CalendarSeconds(s.clock.Now(), spec)
}

func (s *defaultService) ScheduleNew(card *domain.Card, settings *domain.UserSettings) error {
	if card == nil {
		return ErrNilCard
	}
	if settings == nil {
		return ErrNilSettings
	}
	next := s.NextReviewTimestamp(settings.IntervalFor(domain.MinLevel))
	card.NextAnswerDate = &next
	return nil
}

func (s *defaultService) ApplyAnswer(
	card *domain.Card,
	settings *domain.UserSettings,
	summary *domain.UserSummary,
	isCorrect bool,
) (Outcome, error) {
	switch {
	case card == nil:
		return Outcome{}, ErrNilCard
	case settings == nil:
		return Outcome{}, ErrNilSettings
	case summary == nil:
		return Outcome{}, ErrNilSummary
	}

	out, err := Transition(card.SavingsScore, isCorrect)
	if err != nil {
		return Outcome{}, err
	}
	if out.CountsAnswer {
		if err := summary.RecordAnswer(out.CounterLevel, out.Correct); err != nil {
			return Outcome{}, err
		}
	}

	now := s.clock.Now()
	card.PreviousAnswerDate = &now
	card.SavingsScore = out.NewLevel
	if out.Retained {
		card.RetentionState = true
	}
	if out.Reschedule {
		next := now.Add(time.Duration(settings.IntervalFor(out.IntervalLevel)) * time.Second)
		card.NextAnswerDate = &next
	}
	return out, nil
}
