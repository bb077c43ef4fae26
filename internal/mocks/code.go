package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/oblivion-api/internal/platform/mail"
	"github.com/phrazzld/oblivion-api/internal/service/auth"
)

var (
	_ auth.CodeGenerator = (*MockCodeGenerator)(nil)
	_ mail.CodeSender    = (*MockCodeSender)(nil)
)

// MockCodeGenerator implements auth.CodeGenerator. It hands out Codes in
// order and repeats the last one once they run out.
type MockCodeGenerator struct {
	Codes []string
	Err   error

	mu    sync.Mutex
	calls int
}

// Generate implements auth.CodeGenerator.
func (m *MockCodeGenerator) Generate() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Codes) == 0 {
		return "123456", nil
	}
	i := m.calls
	if i >= len(m.Codes) {
		i = len(m.Codes) - 1
	}
	m.calls++
	return m.Codes[i], nil
}

// SentCode is one recorded call to MockCodeSender.
type SentCode struct {
	Email string
	Code  string
}

// MockCodeSender implements mail.CodeSender and records what it was asked to send.
type MockCodeSender struct {
	SendFn func(ctx context.Context, email, code string) error
	Err    error

	mu   sync.Mutex
	Sent []SentCode
}

// SendVerificationCode implements mail.CodeSender.
func (m *MockCodeSender) SendVerificationCode(ctx context.Context, email, code string) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, SentCode{Email: email, Code: code})
	m.mu.Unlock()
	if m.SendFn != nil {
		return m.SendFn(ctx, email, code)
	}
	return m.Err
}

// SentCodes returns a copy of the recorded sends.
func (m *MockCodeSender) SentCodes() []SentCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentCode(nil), m.Sent...)
}
