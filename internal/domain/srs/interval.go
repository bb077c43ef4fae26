package srs

import (
	"time"

	"github.com/phrazzld/oblivion-api/internal/domain"
)

// MaxIntervalYears caps any configured interval.
const MaxIntervalYears = 100

// CalendarSeconds converts spec into seconds measured from ref. Months and
// days are added as calendar units in ref's location, so one month from
// 15 January is 31 days while one month from 15 February 2023 is 28 days.
// Hours are added as elapsed time.
func CalendarSeconds(ref time.Time, spec domain.IntervalSpec) (int64, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	end := ref.AddDate(0, spec.Months, spec.Days).Add(time.Duration(spec.Hours) * time.Hour)
	if end.After(ref.AddDate(MaxIntervalYears, 0, 0)) {
		return 0, domain.ErrIntervalTooLong
	}

	seconds := int64(end.Sub(ref) / time.Second)
	if seconds <= 0 {
		return 0, domain.ErrIntervalZero
	}
	return seconds, nil
}
