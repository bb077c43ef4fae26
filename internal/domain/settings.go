package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const secondsPerDay = 24 * 60 * 60

// DefaultIntervals is the interval table given to every new user, in seconds:
// 1 day, 3 days, 1 week, 2 weeks, 1 month, 3 months, 6 months.
var DefaultIntervals = [LevelCount]int64{
	1 * secondsPerDay,
	3 * secondsPerDay,
	7 * secondsPerDay,
	14 * secondsPerDay,
	30 * secondsPerDay,
	90 * secondsPerDay,
	180 * secondsPerDay,
}

// Interval specification errors
var (
	ErrIntervalNegative = fmt.Errorf("%w: interval components cannot be negative", ErrValidation)
	ErrIntervalZero     = fmt.Errorf("%w: interval must be longer than zero", ErrValidation)
	ErrIntervalTooLong  = fmt.Errorf("%w: interval is too long", ErrValidation)
)

// Upper bounds for each component of an IntervalSpec; together they keep the
// arithmetic far away from time.Duration overflow.
const (
	MaxIntervalMonths = 1200
	MaxIntervalDays   = 36500
	MaxIntervalHours  = 876000
)

// UserSettings is a user's interval table: for each level the number of
// seconds until the next review once that level has been passed.
type UserSettings struct {
	UserID    uuid.UUID
	Intervals [LevelCount]int64 // index 0..6 holds levels 1..7
	UpdatedAt time.Time
}

// NewUserSettings returns the default interval table for user.
func NewUserSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID:    userID,
		Intervals: DefaultIntervals,
	}
}

// IntervalFor returns the configured seconds for level. Any level outside
// 1..7 falls back to the level-7 interval.
func (s *UserSettings) IntervalFor(level int) int64 {
	idx, ok := levelIndex(level)
	if !ok {
		return s.Intervals[LevelCount-1]
	}
	return s.Intervals[idx]
}

// IntervalSpec is a calendar-relative interval as entered by a user.
// Months are resolved against a reference date, so one month is 28 to 31 days.
type IntervalSpec struct {
	Months int `json:"months"`
	Days   int `json:"days"`
	Hours  int `json:"hours"`
}

// Validate rejects negative, empty and oversized specifications.
func (s IntervalSpec) Validate() error {
	switch {
	case s.Months < 0 || s.Days < 0 || s.Hours < 0:
		return ErrIntervalNegative
	case s.Months == 0 && s.Days == 0 && s.Hours == 0:
		return ErrIntervalZero
	case s.Months > MaxIntervalMonths || s.Days > MaxIntervalDays || s.Hours > MaxIntervalHours:
		return ErrIntervalTooLong
	}
	return nil
}
