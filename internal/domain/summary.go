package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrCounterLevel is returned when an answer is recorded for a level outside 1..7.
var ErrCounterLevel = errors.New("answer counters exist only for levels 1 to 7")

// UserSummary aggregates a user's answer history. Answer counters only grow.
type UserSummary struct {
	UserID               uuid.UUID
	Answers              [LevelCount]int // index 0..6 holds levels 1..7
	CorrectAnswers       [LevelCount]int
	ConsecutiveLoginDays int
	LastLoginAt          *time.Time
	UpdatedAt            time.Time
}

// NewUserSummary returns an empty summary for user.
func NewUserSummary(userID uuid.UUID) *UserSummary {
	return &UserSummary{UserID: userID}
}

// RecordAnswer counts one answer given at level. Correct answers are also
// counted in CorrectAnswers.
func (s *UserSummary) RecordAnswer(level int, correct bool) error {
	idx, ok := levelIndex(level)
	if !ok {
		return ErrCounterLevel
	}
	s.Answers[idx]++
	if correct {
		s.CorrectAnswers[idx]++
	}
	return nil
}

// AnswersAt returns the answer and correct-answer counts for level.
func (s *UserSummary) AnswersAt(level int) (answers, correct int) {
	idx, ok := levelIndex(level)
	if !ok {
		return 0, 0
	}
	return s.Answers[idx], s.CorrectAnswers[idx]
}

// RecordLogin updates the login streak. Calendar days are taken in now's
// location: a login on the day after the previous one extends the streak,
// a second login on the same day keeps it and any longer gap restarts it at 1.
func (s *UserSummary) RecordLogin(now time.Time) {
	switch {
	case s.LastLoginAt == nil || s.ConsecutiveLoginDays == 0:
		s.ConsecutiveLoginDays = 1
	default:
		last := startOfDay(s.LastLoginAt.In(now.Location()))
		today := startOfDay(now)
		switch {
		case last.Equal(today):
			// same day, streak unchanged
		case last.AddDate(0, 0, 1).Equal(today):
			s.ConsecutiveLoginDays++
		default:
			s.ConsecutiveLoginDays = 1
		}
	}
	s.LastLoginAt = &now
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
