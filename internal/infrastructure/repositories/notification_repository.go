package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tharanikumar/medvault/domain"
)

// NotificationRepositoryImpl implements domain.NotificationRepository using GORM
type NotificationRepositoryImpl struct {
	db *gorm.DB
}

// DBNotification represents the database model for Notification
type DBNotification struct {
	ID        uint `gorm:"primaryKey"`
	AccountID uint `gorm:"index"`
	Title     string
	Body      string
	Category  string `gorm:"size:50"`
	Read      bool   `gorm:"index"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBNotification) TableName() string {
	return "notifications"
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

// Create implements domain.NotificationRepository
func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *domain.Notification) error {
	dbN := &DBNotification{
		AccountID: n.AccountID,
		Title:     n.Title,
		Body:      n.Body,
		Category:  n.Category,
		Read:      n.Read,
	}
	if err := r.db.WithContext(ctx).Create(dbN).Error; err != nil {
		return err
	}
	n.ID = dbN.ID
	n.CreatedAt = dbN.CreatedAt
	return nil
}

// ListByAccount implements domain.NotificationRepository
func (r *NotificationRepositoryImpl) ListByAccount(ctx context.Context, accountID uint, unreadOnly bool) ([]domain.Notification, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}

	var dbNs []DBNotification
	if err := q.Order("created_at DESC").Find(&dbNs).Error; err != nil {
		return nil, err
	}

	ns := make([]domain.Notification, 0, len(dbNs))
	for _, dbN := range dbNs {
		ns = append(ns, domain.Notification{
			ID:        dbN.ID,
			AccountID: dbN.AccountID,
			Title:     dbN.Title,
			Body:      dbN.Body,
			Category:  dbN.Category,
			Read:      dbN.Read,
			CreatedAt: dbN.CreatedAt,
		})
	}
	return ns, nil
}

// MarkRead implements domain.NotificationRepository. The account_id guard
// keeps recipients from acknowledging each other's notifications.
func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, accountID, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&DBNotification{}).
		Where("id = ? AND account_id = ?", id, accountID).
		Update("read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
