package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/tharanikumar/medvault/domain"
)

// DoctorRepositoryImpl implements domain.DoctorRepository using GORM
type DoctorRepositoryImpl struct {
	db *gorm.DB
}

// DBDoctorProfile represents the database model for DoctorProfile
type DBDoctorProfile struct {
	ID              uint   `gorm:"primaryKey"`
	AccountID       uint   `gorm:"uniqueIndex"`
	FirstName       string `gorm:"size:64"`
	LastName        string `gorm:"size:64"`
	Specialization  string `gorm:"index;size:128"`
	HospitalID      uint   `gorm:"index"`
	ConsultationFee float64
	Available       bool `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBDoctorProfile) TableName() string {
	return "doctor_profiles"
}

// NewDoctorRepository creates a new doctor repository
func NewDoctorRepository(db *gorm.DB) domain.DoctorRepository {
	return &DoctorRepositoryImpl{db: db}
}

// Upsert implements domain.DoctorRepository
func (r *DoctorRepositoryImpl) Upsert(ctx context.Context, profile *domain.DoctorProfile) error {
	var existing DBDoctorProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", profile.AccountID).First(&existing).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	dbProfile := r.domainToDB(profile)
	if err == nil {
		dbProfile.ID = existing.ID
	}
	if err := r.db.WithContext(ctx).Save(dbProfile).Error; err != nil {
		return err
	}
	profile.ID = dbProfile.ID
	return nil
}

// FindByAccount implements domain.DoctorRepository
func (r *DoctorRepositoryImpl) FindByAccount(ctx context.Context, accountID uint) (*domain.DoctorProfile, error) {
	var dbProfile DBDoctorProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&dbProfile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProfile), nil
}

// Search implements domain.DoctorRepository. Only available doctors are
// returned; an empty specialization matches all of them.
func (r *DoctorRepositoryImpl) Search(ctx context.Context, specialization string) ([]domain.DoctorProfile, error) {
	q := r.db.WithContext(ctx).Where("available = ?", true)
	if specialization != "" {
		q = q.Where("specialization LIKE ?", "%"+specialization+"%")
	}

	var dbProfiles []DBDoctorProfile
	if err := q.Find(&dbProfiles).Error; err != nil {
		return nil, err
	}

	profiles := make([]domain.DoctorProfile, 0, len(dbProfiles))
	for i := range dbProfiles {
		profiles = append(profiles, *r.dbToDomain(&dbProfiles[i]))
	}
	return profiles, nil
}

func (r *DoctorRepositoryImpl) domainToDB(profile *domain.DoctorProfile) *DBDoctorProfile {
	return &DBDoctorProfile{
		ID:              profile.ID,
		AccountID:       profile.AccountID,
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		Specialization:  profile.Specialization,
		HospitalID:      profile.HospitalID,
		ConsultationFee: profile.ConsultationFee,
		Available:       profile.Available,
	}
}

func (r *DoctorRepositoryImpl) dbToDomain(dbProfile *DBDoctorProfile) *domain.DoctorProfile {
	return &domain.DoctorProfile{
		ID:              dbProfile.ID,
		AccountID:       dbProfile.AccountID,
		FirstName:       dbProfile.FirstName,
		LastName:        dbProfile.LastName,
		Specialization:  dbProfile.Specialization,
		HospitalID:      dbProfile.HospitalID,
		ConsultationFee: dbProfile.ConsultationFee,
		Available:       dbProfile.Available,
	}
}
