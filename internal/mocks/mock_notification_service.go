package mocks

import (
	"context"

	"github.com/tharanikumar/medvault/domain"
)

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	NotifyFunc   func(ctx context.Context, accountID uint, title, body, category string)
	ListFunc     func(ctx context.Context, accountID uint, unreadOnly bool) ([]domain.Notification, error)
	MarkReadFunc func(ctx context.Context, accountID, id uint) error

	// Notified records the target of every default Notify call
	Notified []uint
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// Notify records a notification
func (m *MockNotificationService) Notify(ctx context.Context, accountID uint, title, body, category string) {
	if m.NotifyFunc != nil {
		m.NotifyFunc(ctx, accountID, title, body, category)
		return
	}
	m.Notified = append(m.Notified, accountID)
}

// List lists an account's notifications
func (m *MockNotificationService) List(ctx context.Context, accountID uint, unreadOnly bool) ([]domain.Notification, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, accountID, unreadOnly)
	}
	return nil, nil
}

// MarkRead flags a notification as read
func (m *MockNotificationService) MarkRead(ctx context.Context, accountID, id uint) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, accountID, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
