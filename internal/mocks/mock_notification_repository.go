package mocks

import (
	"context"

	"github.com/tharanikumar/medvault/domain"
)

// MockNotificationRepository implements domain.NotificationRepository interface for testing
type MockNotificationRepository struct {
	CreateFunc        func(ctx context.Context, n *domain.Notification) error
	ListByAccountFunc func(ctx context.Context, accountID uint, unreadOnly bool) ([]domain.Notification, error)
	MarkReadFunc      func(ctx context.Context, accountID, id uint) (bool, error)
}

// NewMockNotificationRepository creates a new MockNotificationRepository with default behaviors
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{}
}

// Create records a notification
func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	// Default behavior: success
	return nil
}

// ListByAccount lists an account's notifications
func (m *MockNotificationRepository) ListByAccount(ctx context.Context, accountID uint, unreadOnly bool) ([]domain.Notification, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, unreadOnly)
	}
	return nil, nil
}

// MarkRead flips the read flag for an owned notification
func (m *MockNotificationRepository) MarkRead(ctx context.Context, accountID, id uint) (bool, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, accountID, id)
	}
	// Default behavior: found and updated
	return true, nil
}

// Compile-time interface compliance verification
var _ domain.NotificationRepository = (*MockNotificationRepository)(nil)
