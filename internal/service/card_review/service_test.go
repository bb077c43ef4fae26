package card_review_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/domain/srs"
	"github.com/phrazzld/oblivion-api/internal/mocks"
	"github.com/phrazzld/oblivion-api/internal/service/card_review"
	"github.com/phrazzld/oblivion-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	userID    uuid.UUID
	card      *domain.Card
	settings  *domain.UserSettings
	summary   *domain.UserSummary
	cards     *mocks.MockCardStore
	settingsS *mocks.MockUserSettingsStore
	summaries *mocks.MockUserSummaryStore
	svc       card_review.Service
}

func newFixture(level int) *fixture {
	userID := uuid.New()
	scheduled := now.Add(-time.Hour)
	card := &domain.Card{
		ID:             uuid.New(),
		UserID:         userID,
		DeckID:         uuid.New(),
		Sentence:       "s",
		Meaning:        "m",
		SavingsScore:   level,
		NextAnswerDate: &scheduled,
	}
	f := &fixture{
		userID:   userID,
		card:     card,
		settings: domain.NewUserSettings(userID),
		summary:  domain.NewUserSummary(userID),
	}
	f.cards = &mocks.MockCardStore{Card: card}
	f.settingsS = &mocks.MockUserSettingsStore{Settings: f.settings}
	f.summaries = &mocks.MockUserSummaryStore{Summary: f.summary}
	f.svc = card_review.NewService(
		f.cards, f.settingsS, f.summaries,
		srs.NewService(srs.FixedClock(now)),
		mocks.InlineTx,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func days(n int) time.Time {
	return now.Add(time.Duration(n) * 24 * time.Hour)
}

func TestRecordAnswer_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        int
		correct      bool
		wantLevel    int
		wantRetained bool
		wantNext     *time.Time // nil keeps the previous date
		counterLevel int
	}{
		{"level 1 correct", 1, true, 2, false, ptr(days(1)), 1},
		{"level 2 correct", 2, true, 3, false, ptr(days(3)), 2},
		{"level 3 correct", 3, true, 4, false, ptr(days(7)), 3},
		{"level 4 correct", 4, true, 5, false, ptr(days(14)), 4},
		{"level 5 correct", 5, true, 6, false, ptr(days(30)), 5},
		{"level 6 correct", 6, true, 7, false, ptr(days(90)), 6},
		{"level 7 correct retains", 7, true, 7, true, nil, 7},
		{"level 3 incorrect resets", 3, false, 1, false, ptr(days(1)), 3},
		{"level 7 incorrect resets", 7, false, 1, false, ptr(days(1)), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(tt.level)
			previousNext := *f.card.NextAnswerDate

			card, err := f.svc.RecordAnswer(context.Background(), f.userID, f.card.ID, tt.correct)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, card.SavingsScore)
			assert.Equal(t, tt.wantRetained, card.RetentionState)
			require.NotNil(t, card.PreviousAnswerDate)
			assert.Equal(t, now, *card.PreviousAnswerDate)
			if tt.wantNext == nil {
				assert.Equal(t, previousNext, *card.NextAnswerDate, "retained cards are not rescheduled")
			} else {
				assert.Equal(t, *tt.wantNext, *card.NextAnswerDate)
			}

			answers, correct := f.summary.AnswersAt(tt.counterLevel)
			assert.Equal(t, 1, answers)
			if tt.correct {
				assert.Equal(t, 1, correct)
			} else {
				assert.Equal(t, 0, correct)
			}

			require.Len(t, f.cards.ScheduleUpdates, 1)
			assert.Equal(t, tt.wantLevel, f.cards.ScheduleUpdates[0].SavingsScore)
			require.Len(t, f.summaries.Updated, 1)
			assert.Equal(t, 1, f.summaries.LockedReads, "summary is read with a row lock")
			assert.Zero(t, f.summaries.UnlockedReads)
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestRecordAnswer_UnansweredCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		correct  bool
		wantNext time.Time
	}{
		{"correct schedules the level-7 fallback interval", true, days(180)},
		{"incorrect schedules the level-1 interval", false, days(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(domain.UnansweredLevel)

			card, err := f.svc.RecordAnswer(context.Background(), f.userID, f.card.ID, tt.correct)

			require.NoError(t, err)
			assert.Equal(t, domain.MinLevel, card.SavingsScore)
			assert.False(t, card.RetentionState)
			assert.Equal(t, tt.wantNext, *card.NextAnswerDate)
			for level := domain.MinLevel; level <= domain.MaxLevel; level++ {
				answers, correct := f.summary.AnswersAt(level)
				assert.Zero(t, answers, "level %d", level)
				assert.Zero(t, correct, "level %d", level)
			}
			require.Len(t, f.cards.ScheduleUpdates, 1)
			assert.Empty(t, f.summaries.Updated, "no counter moves, so the summary is not written")
		})
	}
}

func TestRecordAnswer_CountersAccumulateAtLevelThree(t *testing.T) {
	t.Parallel()

	f := newFixture(3)
	f.summary.Answers[2] = 10
	f.summary.CorrectAnswers[2] = 6

	_, err := f.svc.RecordAnswer(context.Background(), f.userID, f.card.ID, true)
	require.NoError(t, err)
	answers, correct := f.summary.AnswersAt(3)
	assert.Equal(t, 11, answers)
	assert.Equal(t, 7, correct)

	f.card.SavingsScore = 3
	_, err = f.svc.RecordAnswer(context.Background(), f.userID, f.card.ID, false)
	require.NoError(t, err)
	answers, correct = f.summary.AnswersAt(3)
	assert.Equal(t, 12, answers)
	assert.Equal(t, 7, correct, "incorrect answers never touch the correct counter")
}

func TestRecordAnswer_CustomIntervals(t *testing.T) {
	t.Parallel()

	f := newFixture(1)
	f.settings.Intervals[0] = 86400

	card, err := f.svc.RecordAnswer(context.Background(), f.userID, f.card.ID, true)
	require.NoError(t, err)
	assert.Equal(t, now.Add(86400*time.Second), *card.NextAnswerDate)
}

func TestRecordAnswer_Failures(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("disk full")

	tests := []struct {
		name     string
		arrange  func(f *fixture)
		userID   func(f *fixture) uuid.UUID
		wantErr  error
		noWrites bool
	}{
		{
			name:     "card not found",
			arrange:  func(f *fixture) { f.cards.Card = nil },
			wantErr:  store.ErrCardNotFound,
			noWrites: true,
		},
		{
			name:     "other user's card",
			userID:   func(*fixture) uuid.UUID { return uuid.New() },
			wantErr:  domain.ErrForbidden,
			noWrites: true,
		},
		{
			name:     "settings missing",
			arrange:  func(f *fixture) { f.settingsS.Settings = nil },
			wantErr:  store.ErrSettingsNotFound,
			noWrites: true,
		},
		{
			name:     "summary missing",
			arrange:  func(f *fixture) { f.summaries.Summary = nil },
			wantErr:  store.ErrSummaryNotFound,
			noWrites: true,
		},
		{
			name:     "corrupt level",
			arrange:  func(f *fixture) { f.card.SavingsScore = 9 },
			wantErr:  srs.ErrInvalidLevel,
			noWrites: true,
		},
		{
			name: "card write fails",
			arrange: func(f *fixture) {
				f.cards.UpdateScheduleFn = func(context.Context, *domain.Card) error { return writeErr }
			},
			wantErr: writeErr,
		},
		{
			name: "summary write fails",
			arrange: func(f *fixture) {
				f.summaries.UpdateFn = func(context.Context, *domain.UserSummary) error { return writeErr }
			},
			wantErr: writeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(2)
			if tt.arrange != nil {
				tt.arrange(f)
			}
			userID := f.userID
			if tt.userID != nil {
				userID = tt.userID(f)
			}

			card, err := f.svc.RecordAnswer(context.Background(), userID, f.card.ID, true)

			assert.Nil(t, card)
			assert.ErrorIs(t, err, tt.wantErr)
			var svcErr *card_review.ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, "record_answer", svcErr.Operation)
			if tt.noWrites {
				assert.Empty(t, f.cards.ScheduleUpdates)
				assert.Empty(t, f.summaries.Updated)
			}
		})
	}
}

func TestRecordAnswer_ForbiddenLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	f := newFixture(4)
	before := *f.card
	summaryBefore := *f.summary

	_, err := f.svc.RecordAnswer(context.Background(), uuid.New(), f.card.ID, true)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, before, *f.card)
	assert.Equal(t, summaryBefore, *f.summary)
	assert.Zero(t, f.summaries.LockedReads, "ownership is checked before the summary is touched")
}

func TestRecordAnswer_TransactionError(t *testing.T) {
	t.Parallel()

	f := newFixture(1)
	txErr := errors.New("could not begin")
	svc := card_review.NewService(f.cards, f.settingsS, f.summaries,
		srs.NewService(srs.FixedClock(now)), mocks.FailingTx(txErr), nil)

	_, err := svc.RecordAnswer(context.Background(), f.userID, f.card.ID, true)

	assert.ErrorIs(t, err, txErr)
	var svcErr *card_review.ServiceError
	assert.ErrorAs(t, err, &svcErr)
}

func TestNewService_PanicsOnNilDependency(t *testing.T) {
	t.Parallel()

	sched := srs.NewService(nil)
	assert.Panics(t, func() {
		card_review.NewService(nil, &mocks.MockUserSettingsStore{}, &mocks.MockUserSummaryStore{}, sched, mocks.InlineTx, nil)
	})
	assert.Panics(t, func() {
		card_review.NewService(&mocks.MockCardStore{}, &mocks.MockUserSettingsStore{}, &mocks.MockUserSummaryStore{}, sched, nil, nil)
	})
}
