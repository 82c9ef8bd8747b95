package mocks

import (
	"github.com/tharanikumar/medvault/domain"
)

// MockMailer implements domain.Mailer interface for testing
type MockMailer struct {
	SendCodeFunc func(to, code string, purpose domain.Purpose) error

	// Sent records every successful SendCode call
	Sent []string
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// SendCode delivers a verification code
func (m *MockMailer) SendCode(to, code string, purpose domain.Purpose) error {
	if m.SendCodeFunc != nil {
		return m.SendCodeFunc(to, code, purpose)
	}
	// Default behavior: record and succeed
	m.Sent = append(m.Sent, code)
	return nil
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*MockMailer)(nil)
