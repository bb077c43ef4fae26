package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/service/auth"
)

// Authentication payloads

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required,max=1024"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// SignupResponse describes the inactive user created by signup.
type SignupResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// VerifyRequest submits the six-digit code mailed to the user.
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required,len=6,numeric"`
}

// VerifyResponse is returned once the user is active.
type VerifyResponse struct {
	Username string `json:"username"`
}

// ResendRequest asks for a new verification code.
type ResendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	// ExpiresAt is the RFC 3339 expiry of the access token.
	ExpiresAt string `json:"expires_at"`
}

func tokenPairToResponse(pair *auth.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    pair.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// User payloads

// ProfileResponse is the authenticated user's profile.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func userToProfile(u *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// SettingsResponse lists the interval table, in seconds, for levels 1 to 7.
type SettingsResponse struct {
	IntervalSeconds [domain.LevelCount]int64 `json:"interval_seconds"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func settingsToResponse(s *domain.UserSettings) SettingsResponse {
	return SettingsResponse{
		IntervalSeconds: s.Intervals,
		UpdatedAt:       s.UpdatedAt,
	}
}

// IntervalSpecRequest is one level of an interval table update.
type IntervalSpecRequest struct {
	Months int `json:"months" validate:"gte=0"`
	Days   int `json:"days"   validate:"gte=0"`
	Hours  int `json:"hours"  validate:"gte=0"`
}

// UpdateSettingsRequest replaces the whole interval table.
type UpdateSettingsRequest struct {
	Levels []IntervalSpecRequest `json:"levels" validate:"required,len=7,dive"`
}

// Specs converts a validated request to the domain form.
func (r UpdateSettingsRequest) Specs() [domain.LevelCount]domain.IntervalSpec {
	var specs [domain.LevelCount]domain.IntervalSpec
	for i := range specs {
		if i < len(r.Levels) {
			l := r.Levels[i]
			specs[i] = domain.IntervalSpec{Months: l.Months, Days: l.Days, Hours: l.Hours}
		}
	}
	return specs
}

// SummaryResponse is the user's answer history and login streak.
type SummaryResponse struct {
	Answers              [domain.LevelCount]int `json:"answers"`
	CorrectAnswers       [domain.LevelCount]int `json:"correct_answers"`
	ConsecutiveLoginDays int                    `json:"consecutive_login_days"`
	LastLoginAt          *time.Time             `json:"last_login_at"`
}

func summaryToResponse(s *domain.UserSummary) SummaryResponse {
	return SummaryResponse{
		Answers:              s.Answers,
		CorrectAnswers:       s.CorrectAnswers,
		ConsecutiveLoginDays: s.ConsecutiveLoginDays,
		LastLoginAt:          s.LastLoginAt,
	}
}

// Deck payloads

// DeckRequest creates or renames a deck.
type DeckRequest struct {
	Name string `json:"name" validate:"required,max=1024"`
}

// DeckResponse represents one deck.
type DeckResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeckWithCountResponse is a deck with the number of cards in it.
type DeckWithCountResponse struct {
	DeckResponse
	CardCount int `json:"card_count"`
}

func deckToResponse(d *domain.Deck) DeckResponse {
	return DeckResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func decksToResponse(decks []*domain.Deck) []DeckResponse {
	out := make([]DeckResponse, 0, len(decks))
	for _, d := range decks {
		out = append(out, deckToResponse(d))
	}
	return out
}

func deckCountsToResponse(decks []*domain.DeckWithCardCount) []DeckWithCountResponse {
	out := make([]DeckWithCountResponse, 0, len(decks))
	for _, d := range decks {
		out = append(out, DeckWithCountResponse{
			DeckResponse: deckToResponse(&d.Deck),
			CardCount:    d.CardCount,
		})
	}
	return out
}

// Card payloads

// CardRequest creates a card or replaces its content.
type CardRequest struct {
	Sentence  string  `json:"sentence"   validate:"required,max=1024"`
	Meaning   string  `json:"meaning"    validate:"required,max=1024"`
	ImagePath *string `json:"image_path" validate:"omitempty,max=255"`
	Etymology *string `json:"etymology"  validate:"omitempty,max=1024"`
}

// Content converts the request to the domain form.
func (r CardRequest) Content() domain.CardContent {
	return domain.CardContent{
		Sentence:  r.Sentence,
		Meaning:   r.Meaning,
		ImagePath: r.ImagePath,
		Etymology: r.Etymology,
	}
}

// AnswerRequest reports whether the user answered a card correctly.
type AnswerRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}

// CardResponse represents one card and its schedule.
type CardResponse struct {
	ID                 uuid.UUID  `json:"id"`
	DeckID             uuid.UUID  `json:"deck_id"`
	Sentence           string     `json:"sentence"`
	Meaning            string     `json:"meaning"`
	ImagePath          *string    `json:"image_path"`
	Etymology          *string    `json:"etymology"`
	SavingsScore       int        `json:"savings_score"`
	RetentionState     bool       `json:"retention_state"`
	PreviousAnswerDate *time.Time `json:"previous_answer_date"`
	NextAnswerDate     *time.Time `json:"next_answer_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func cardToResponse(c *domain.Card) CardResponse {
	return CardResponse{
		ID:                 c.ID,
		DeckID:             c.DeckID,
		Sentence:           c.Sentence,
		Meaning:            c.Meaning,
		ImagePath:          c.ImagePath,
		Etymology:          c.Etymology,
		SavingsScore:       c.SavingsScore,
		RetentionState:     c.RetentionState,
		PreviousAnswerDate: c.PreviousAnswerDate,
		NextAnswerDate:     c.NextAnswerDate,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func cardsToResponse(cards []*domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToResponse(c))
	}
	return out
}
