package mocks

import (
	"context"

	"github.com/tharanikumar/medvault/domain"
)

// MockCodeRepository implements domain.CodeRepository interface for testing
type MockCodeRepository struct {
	AppendFunc           func(ctx context.Context, code *domain.VerificationCode) error
	FindLatestActiveFunc func(ctx context.Context, accountID uint, purpose domain.Purpose) (*domain.VerificationCode, error)
	ConsumeFunc          func(ctx context.Context, id uint) (bool, error)
}

// NewMockCodeRepository creates a new MockCodeRepository with default behaviors
func NewMockCodeRepository() *MockCodeRepository {
	return &MockCodeRepository{}
}

// Append records a new ledger entry
func (m *MockCodeRepository) Append(ctx context.Context, code *domain.VerificationCode) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, code)
	}
	// Default behavior: success
	return nil
}

// FindLatestActive returns the newest unconsumed code
func (m *MockCodeRepository) FindLatestActive(ctx context.Context, accountID uint, purpose domain.Purpose) (*domain.VerificationCode, error) {
	if m.FindLatestActiveFunc != nil {
		return m.FindLatestActiveFunc(ctx, accountID, purpose)
	}
	// Default behavior: no active code
	return nil, domain.ErrInvalidOrExpiredCode
}

// Consume marks a code consumed
func (m *MockCodeRepository) Consume(ctx context.Context, id uint) (bool, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, id)
	}
	// Default behavior: consumed
	return true, nil
}

// Compile-time interface compliance verification
var _ domain.CodeRepository = (*MockCodeRepository)(nil)
