package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tharanikumar/medvault/domain"
)

// CodeRepositoryImpl implements domain.CodeRepository using GORM. Rows are
// append-only: codes are marked consumed, never deleted.
type CodeRepositoryImpl struct {
	db *gorm.DB
}

// DBVerificationCode represents the database model for VerificationCode
type DBVerificationCode struct {
	ID        uint   `gorm:"primaryKey"`
	AccountID uint   `gorm:"index:idx_codes_account_purpose"`
	Code      string `gorm:"size:16"`
	Purpose   string `gorm:"index:idx_codes_account_purpose;size:20"`
	IssuedAt  time.Time
	ExpiresAt time.Time
	Consumed  bool
}

// TableName returns the table name for GORM
func (DBVerificationCode) TableName() string {
	return "verification_codes"
}

// NewCodeRepository creates a new verification ledger repository
func NewCodeRepository(db *gorm.DB) domain.CodeRepository {
	return &CodeRepositoryImpl{db: db}
}

// Append implements domain.CodeRepository
func (r *CodeRepositoryImpl) Append(ctx context.Context, code *domain.VerificationCode) error {
	dbCode := &DBVerificationCode{
		AccountID: code.AccountID,
		Code:      code.Code,
		Purpose:   string(code.Purpose),
		IssuedAt:  code.IssuedAt,
		ExpiresAt: code.ExpiresAt,
		Consumed:  code.Consumed,
	}
	if err := r.db.WithContext(ctx).Create(dbCode).Error; err != nil {
		return err
	}
	code.ID = dbCode.ID
	return nil
}

// FindLatestActive implements domain.CodeRepository. When several
// unconsumed codes exist for the pair, the most recently issued one wins.
func (r *CodeRepositoryImpl) FindLatestActive(ctx context.Context, accountID uint, purpose domain.Purpose) (*domain.VerificationCode, error) {
	var dbCode DBVerificationCode
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND purpose = ? AND consumed = ?", accountID, string(purpose), false).
		Order("issued_at DESC").
		First(&dbCode).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrInvalidOrExpiredCode
		}
		return nil, err
	}

	return &domain.VerificationCode{
		ID:        dbCode.ID,
		AccountID: dbCode.AccountID,
		Code:      dbCode.Code,
		Purpose:   domain.Purpose(dbCode.Purpose),
		IssuedAt:  dbCode.IssuedAt,
		ExpiresAt: dbCode.ExpiresAt,
		Consumed:  dbCode.Consumed,
	}, nil
}

// Consume implements domain.CodeRepository. The consumed=false guard makes
// the write a compare-and-swap: under concurrent validates for the same
// code, exactly one caller sees RowsAffected == 1.
func (r *CodeRepositoryImpl) Consume(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&DBVerificationCode{}).
		Where("id = ? AND consumed = ?", id, false).
		Update("consumed", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
