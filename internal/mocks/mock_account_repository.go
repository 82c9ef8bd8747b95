package mocks

import (
	"context"
	"time"

	"github.com/tharanikumar/medvault/domain"
)

// MockAccountRepository implements domain.AccountRepository interface for testing
type MockAccountRepository struct {
	CreateFunc              func(ctx context.Context, account *domain.Account) error
	FindByEmailFunc         func(ctx context.Context, email string) (*domain.Account, error)
	FindByIDFunc            func(ctx context.Context, id uint) (*domain.Account, error)
	MarkVerifiedFunc        func(ctx context.Context, id uint) error
	MarkProfileCompleteFunc func(ctx context.Context, id uint) error
	SetLastLoginFunc        func(ctx context.Context, id uint, at time.Time) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds an account by email
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByID finds an account by ID
func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// MarkVerified flags the account as verified
func (m *MockAccountRepository) MarkVerified(ctx context.Context, id uint) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// MarkProfileComplete flags the account profile as complete
func (m *MockAccountRepository) MarkProfileComplete(ctx context.Context, id uint) error {
	if m.MarkProfileCompleteFunc != nil {
		return m.MarkProfileCompleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// SetLastLogin records the last login timestamp
func (m *MockAccountRepository) SetLastLogin(ctx context.Context, id uint, at time.Time) error {
	if m.SetLastLoginFunc != nil {
		return m.SetLastLoginFunc(ctx, id, at)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
