package mocks

import (
	"context"

	"github.com/tharanikumar/medvault/domain"
)

// MockDoctorRepository implements domain.DoctorRepository interface for testing
type MockDoctorRepository struct {
	UpsertFunc        func(ctx context.Context, profile *domain.DoctorProfile) error
	FindByAccountFunc func(ctx context.Context, accountID uint) (*domain.DoctorProfile, error)
	SearchFunc        func(ctx context.Context, specialization string) ([]domain.DoctorProfile, error)
}

// NewMockDoctorRepository creates a new MockDoctorRepository with default behaviors
func NewMockDoctorRepository() *MockDoctorRepository {
	return &MockDoctorRepository{}
}

// Upsert creates or replaces a profile
func (m *MockDoctorRepository) Upsert(ctx context.Context, profile *domain.DoctorProfile) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, profile)
	}
	// Default behavior: success
	return nil
}

// FindByAccount finds a profile by owning account
func (m *MockDoctorRepository) FindByAccount(ctx context.Context, accountID uint) (*domain.DoctorProfile, error) {
	if m.FindByAccountFunc != nil {
		return m.FindByAccountFunc(ctx, accountID)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// Search lists available doctors by specialization
func (m *MockDoctorRepository) Search(ctx context.Context, specialization string) ([]domain.DoctorProfile, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, specialization)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.DoctorRepository = (*MockDoctorRepository)(nil)
