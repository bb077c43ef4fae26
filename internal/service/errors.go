package service

import (
	"errors"
	"fmt"
)

// Service sentinel errors. The API layer maps each to a status code.
var (
	// ErrUserInactive is returned at login when the email has not been verified yet.
	// API layer should map this to HTTP 403 Forbidden.
	ErrUserInactive = errors.New("user is not verified")

	// ErrInvalidCredentials is returned at login when the password does not match.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrVerificationMismatch is returned when a submitted code differs from the
	// pending one. A fresh code has already been stored when it is returned.
	ErrVerificationMismatch = errors.New("verification code mismatch")

	// ErrAlreadyVerified is returned when a code is requested for an active user.
	ErrAlreadyVerified = errors.New("user is already verified")
)

// ServiceError wraps an error with the service and operation that produced it.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Err:       err,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s service %s operation failed", e.Service, e.Operation)
	}
	return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
