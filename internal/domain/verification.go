package domain

import (
	"crypto/subtle"
	"fmt"
	"time"
)

// VerificationCodeLength is the number of digits in an email verification code.
const VerificationCodeLength = 6

// ErrInvalidCode is returned for codes that are not exactly six digits.
var ErrInvalidCode = fmt.Errorf("%w: verification code must be %d digits", ErrValidation, VerificationCodeLength)

// Verification is a pending email confirmation. There is at most one per email.
type Verification struct {
	Email     string
	Code      string
	CreatedAt time.Time
}

// NewVerification pairs a normalized email with a code.
func NewVerification(email, code string) (*Verification, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !IsWellFormedCode(code) {
		return nil, ErrInvalidCode
	}
	return &Verification{Email: email, Code: code}, nil
}

// Matches compares code with the stored one in constant time.
func (v *Verification) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(v.Code), []byte(code)) == 1
}

// IsWellFormedCode reports whether code consists of exactly six ASCII digits.
func IsWellFormedCode(code string) bool {
	if len(code) != VerificationCodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
