package services

import (
	"context"

	"github.com/tharanikumar/medvault/domain"
	"github.com/tharanikumar/medvault/internal/logger"
)

// NotificationServiceImpl implements domain.NotificationService
type NotificationServiceImpl struct {
	repo domain.NotificationRepository
	log  *logger.Logger
}

// NewNotificationService creates a new notification sink
func NewNotificationService(repo domain.NotificationRepository, log *logger.Logger) domain.NotificationService {
	return &NotificationServiceImpl{repo: repo, log: log}
}

// Notify implements domain.NotificationService. Failures are absorbed:
// a lost alert must never fail the operation that emitted it.
func (s *NotificationServiceImpl) Notify(ctx context.Context, accountID uint, title, body, category string) {
	n := &domain.Notification{
		AccountID: accountID,
		Title:     title,
		Body:      body,
		Category:  category,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.log.WithField("account_id", accountID).WithField("category", category).
			WithError(err).Error("failed to store notification")
	}
}

// List implements domain.NotificationService
func (s *NotificationServiceImpl) List(ctx context.Context, accountID uint, unreadOnly bool) ([]domain.Notification, error) {
	return s.repo.ListByAccount(ctx, accountID, unreadOnly)
}

// MarkRead implements domain.NotificationService
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, accountID, id uint) error {
	ok, err := s.repo.MarkRead(ctx, accountID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotificationNotFound
	}
	return nil
}
