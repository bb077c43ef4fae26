package srs

import (
	"errors"

	"github.com/phrazzld/oblivion-api/internal/domain"
)

// ErrInvalidLevel is returned for a stored level outside 0..7.
var ErrInvalidLevel = errors.New("card level out of range")

// Outcome is the effect of one answer on a card.
type Outcome struct {
	// NewLevel is the card's level after the answer.
	NewLevel int
	// Retained is true when the answer completes the curve at level 7.
	Retained bool
	// Reschedule is false only for a retained card.
	Reschedule bool
	// IntervalLevel selects the interval used for the next review date.
	IntervalLevel int
	// CounterLevel selects which summary counters the answer increments.
	CounterLevel int
	// CountsAnswer is false for an unanswered card, which has no counter slot.
	CountsAnswer bool
	Correct      bool
}

// Transition decides how an answer at level moves the card.
//
// A correct answer below 7 advances one level and schedules the interval of
// the current level. At level 0 that lookup falls back to the level-7
// interval. A correct answer at 7 retains the card without a new date. Any
// incorrect answer drops the card to level 1 with the level-1 interval.
// Answers at level 0 leave the summary counters alone.
func Transition(level int, isCorrect bool) (Outcome, error) {
	if level < domain.UnansweredLevel || level > domain.MaxLevel {
		return Outcome{}, ErrInvalidLevel
	}

	out := Outcome{
		CounterLevel: level,
		CountsAnswer: level != domain.UnansweredLevel,
		Correct:      isCorrect,
	}
	switch {
	case !isCorrect:
		out.NewLevel = domain.MinLevel
		out.IntervalLevel = domain.MinLevel
		out.Reschedule = true
	case level == domain.MaxLevel:
		out.NewLevel = domain.MaxLevel
		out.Retained = true
	default:
		out.NewLevel = level + 1
		out.IntervalLevel = level
		out.Reschedule = true
	}
	return out, nil
}
