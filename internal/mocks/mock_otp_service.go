package mocks

import (
	"context"

	"github.com/tharanikumar/medvault/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc    func(ctx context.Context, accountID uint, purpose domain.Purpose) (string, bool, error)
	ValidateFunc func(ctx context.Context, accountID uint, purpose domain.Purpose, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue generates and delivers a code
func (m *MockOTPService) Issue(ctx context.Context, accountID uint, purpose domain.Purpose) (string, bool, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, accountID, purpose)
	}
	// Default behavior: fixed code, delivered
	return "123456", true, nil
}

// Validate checks and consumes a submitted code
func (m *MockOTPService) Validate(ctx context.Context, accountID uint, purpose domain.Purpose, code string) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, accountID, purpose, code)
	}
	// Default behavior: valid
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
