package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tharanikumar/medvault/domain"
)

// AppointmentRepositoryImpl implements domain.AppointmentRepository using GORM
type AppointmentRepositoryImpl struct {
	db *gorm.DB
}

// DBAppointment represents the database model for Appointment
type DBAppointment struct {
	ID         uint      `gorm:"primaryKey"`
	PatientID  uint      `gorm:"index"`
	DoctorID   uint      `gorm:"index:idx_appointments_slot"`
	HospitalID uint      `gorm:"index"`
	Date       time.Time `gorm:"index:idx_appointments_slot"`
	TimeSlot   string    `gorm:"index:idx_appointments_slot;size:8"`
	Status     string    `gorm:"index;size:20"`
	Reason     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (DBAppointment) TableName() string {
	return "appointments"
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) domain.AppointmentRepository {
	return &AppointmentRepositoryImpl{db: db}
}

// Create implements domain.AppointmentRepository
func (r *AppointmentRepositoryImpl) Create(ctx context.Context, apt *domain.Appointment) error {
	dbApt := r.domainToDB(apt)
	if err := r.db.WithContext(ctx).Create(dbApt).Error; err != nil {
		return err
	}
	apt.ID = dbApt.ID
	apt.CreatedAt = dbApt.CreatedAt
	apt.UpdatedAt = dbApt.UpdatedAt
	return nil
}

// FindByID implements domain.AppointmentRepository
func (r *AppointmentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Appointment, error) {
	var dbApt DBAppointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbApt).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbApt), nil
}

// UpdateStatus implements domain.AppointmentRepository. The updated_at
// guard is an optimistic-concurrency check: a concurrent doctor action
// bumps updated_at, which makes the second writer's guard miss instead of
// silently clobbering the first transition.
func (r *AppointmentRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status domain.AppointmentStatus, seenUpdatedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&DBAppointment{}).
		Where("id = ? AND updated_at = ?", id, seenUpdatedAt).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ListByPatient implements domain.AppointmentRepository
func (r *AppointmentRepositoryImpl) ListByPatient(ctx context.Context, patientID uint) ([]domain.Appointment, error) {
	return r.list(ctx, "patient_id = ?", patientID)
}

// ListByDoctor implements domain.AppointmentRepository
func (r *AppointmentRepositoryImpl) ListByDoctor(ctx context.Context, doctorID uint) ([]domain.Appointment, error) {
	return r.list(ctx, "doctor_id = ?", doctorID)
}

// ListByHospital implements domain.AppointmentRepository
func (r *AppointmentRepositoryImpl) ListByHospital(ctx context.Context, hospitalID uint) ([]domain.Appointment, error) {
	return r.list(ctx, "hospital_id = ?", hospitalID)
}

func (r *AppointmentRepositoryImpl) list(ctx context.Context, cond string, arg uint) ([]domain.Appointment, error) {
	var dbApts []DBAppointment
	err := r.db.WithContext(ctx).Where(cond, arg).
		Order("date DESC, time_slot DESC").
		Find(&dbApts).Error
	if err != nil {
		return nil, err
	}

	apts := make([]domain.Appointment, 0, len(dbApts))
	for i := range dbApts {
		apts = append(apts, *r.dbToDomain(&dbApts[i]))
	}
	return apts, nil
}

// CountActiveForSlot implements domain.AppointmentRepository
func (r *AppointmentRepositoryImpl) CountActiveForSlot(ctx context.Context, doctorID uint, date time.Time, slot string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBAppointment{}).
		Where("doctor_id = ? AND date = ? AND time_slot = ? AND status <> ?",
			doctorID, date, slot, string(domain.StatusCancelled)).
		Count(&count).Error
	return count, err
}

func (r *AppointmentRepositoryImpl) domainToDB(apt *domain.Appointment) *DBAppointment {
	return &DBAppointment{
		ID:         apt.ID,
		PatientID:  apt.PatientID,
		DoctorID:   apt.DoctorID,
		HospitalID: apt.HospitalID,
		Date:       apt.Date,
		TimeSlot:   apt.TimeSlot,
		Status:     string(apt.Status),
		Reason:     apt.Reason,
	}
}

func (r *AppointmentRepositoryImpl) dbToDomain(dbApt *DBAppointment) *domain.Appointment {
	return &domain.Appointment{
		ID:         dbApt.ID,
		PatientID:  dbApt.PatientID,
		DoctorID:   dbApt.DoctorID,
		HospitalID: dbApt.HospitalID,
		Date:       dbApt.Date,
		TimeSlot:   dbApt.TimeSlot,
		Status:     domain.AppointmentStatus(dbApt.Status),
		Reason:     dbApt.Reason,
		CreatedAt:  dbApt.CreatedAt,
		UpdatedAt:  dbApt.UpdatedAt,
	}
}
