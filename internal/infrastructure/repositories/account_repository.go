package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tharanikumar/medvault/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account
type DBAccount struct {
	ID              uint       `gorm:"primaryKey"`
	Email           string     `gorm:"uniqueIndex;size:255"`
	PasswordHash    string     `gorm:"column:password"`
	Role            string     `gorm:"index;size:32"`
	Verified        bool       `gorm:"index"`
	ProfileComplete bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	LastLoginAt     *time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		return err
	}
	account.ID = dbAccount.ID
	account.CreatedAt = dbAccount.CreatedAt
	return nil
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// MarkVerified implements domain.AccountRepository
func (r *AccountRepositoryImpl) MarkVerified(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).
		Update("verified", true).Error
}

// MarkProfileComplete implements domain.AccountRepository
func (r *AccountRepositoryImpl) MarkProfileComplete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).
		Update("profile_complete", true).Error
}

// SetLastLogin implements domain.AccountRepository
func (r *AccountRepositoryImpl) SetLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).
		Update("last_login_at", at).Error
}

// domainToDB converts a domain account to a database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:              account.ID,
		Email:           account.Email,
		PasswordHash:    account.PasswordHash,
		Role:            string(account.Role),
		Verified:        account.Verified,
		ProfileComplete: account.ProfileComplete,
		LastLoginAt:     account.LastLoginAt,
	}
}

// dbToDomain converts a database account to a domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:              dbAccount.ID,
		Email:           dbAccount.Email,
		PasswordHash:    dbAccount.PasswordHash,
		Role:            domain.Role(dbAccount.Role),
		Verified:        dbAccount.Verified,
		ProfileComplete: dbAccount.ProfileComplete,
		CreatedAt:       dbAccount.CreatedAt,
		UpdatedAt:       dbAccount.UpdatedAt,
		LastLoginAt:     dbAccount.LastLoginAt,
	}
}
