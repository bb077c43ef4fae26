package mocks

import (
	"context"

	"github.com/phrazzld/oblivion-api/internal/domain"
)

// MockVerificationService implements service.VerificationService for testing
type MockVerificationService struct {
	SignupFn func(ctx context.Context, username, email, password string) (*domain.User, *domain.Verification, error)
	VerifyFn func(ctx context.Context, email, code string) (*domain.User, *domain.Verification, error)
	ResendFn func(ctx context.Context, email string) (*domain.Verification, error)
	LoginFn  func(ctx context.Context, email, password string) (*domain.User, error)

	User         *domain.User
	Verification *domain.Verification
	Err          error
}

// Signup implements service.VerificationService
func (m *MockVerificationService) Signup(
	ctx context.Context,
	username, email, password string,
) (*domain.User, *domain.Verification, error) {
	if m.SignupFn != nil {
		return m.SignupFn(ctx, username, email, password)
	}
	return m.User, m.Verification, m.Err
}

// Verify implements service.VerificationService
func (m *MockVerificationService) Verify(
	ctx context.Context,
	email, code string,
) (*domain.User, *domain.Verification, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, email, code)
	}
	return m.User, m.Verification, m.Err
}

// Resend implements service.VerificationService
func (m *MockVerificationService) Resend(ctx context.Context, email string) (*domain.Verification, error) {
	if m.ResendFn != nil {
		return m.ResendFn(ctx, email)
	}
	return m.Verification, m.Err
}

// Login implements service.VerificationService
func (m *MockVerificationService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return m.User, m.Err
}
