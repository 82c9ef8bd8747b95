package mocks

import (
	"context"
	"time"

	"github.com/tharanikumar/medvault/domain"
)

// MockAppointmentRepository implements domain.AppointmentRepository interface for testing
type MockAppointmentRepository struct {
	CreateFunc             func(ctx context.Context, apt *domain.Appointment) error
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.Appointment, error)
	UpdateStatusFunc       func(ctx context.Context, id uint, status domain.AppointmentStatus, seenUpdatedAt time.Time) (bool, error)
	ListByPatientFunc      func(ctx context.Context, patientID uint) ([]domain.Appointment, error)
	ListByDoctorFunc       func(ctx context.Context, doctorID uint) ([]domain.Appointment, error)
	ListByHospitalFunc     func(ctx context.Context, hospitalID uint) ([]domain.Appointment, error)
	CountActiveForSlotFunc func(ctx context.Context, doctorID uint, date time.Time, slot string) (int64, error)
}

// NewMockAppointmentRepository creates a new MockAppointmentRepository with default behaviors
func NewMockAppointmentRepository() *MockAppointmentRepository {
	return &MockAppointmentRepository{}
}

// Create creates an appointment
func (m *MockAppointmentRepository) Create(ctx context.Context, apt *domain.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, apt)
	}
	// Default behavior: success
	return nil
}

// FindByID finds an appointment by ID
func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uint) (*domain.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrAppointmentNotFound
}

// UpdateStatus writes a guarded status change
func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id uint, status domain.AppointmentStatus, seenUpdatedAt time.Time) (bool, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, seenUpdatedAt)
	}
	// Default behavior: updated
	return true, nil
}

// ListByPatient lists a patient's appointments
func (m *MockAppointmentRepository) ListByPatient(ctx context.Context, patientID uint) ([]domain.Appointment, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

// ListByDoctor lists a doctor's appointments
func (m *MockAppointmentRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]domain.Appointment, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

// ListByHospital lists a hospital's appointments
func (m *MockAppointmentRepository) ListByHospital(ctx context.Context, hospitalID uint) ([]domain.Appointment, error) {
	if m.ListByHospitalFunc != nil {
		return m.ListByHospitalFunc(ctx, hospitalID)
	}
	return nil, nil
}

// CountActiveForSlot counts non-cancelled appointments on the slot
func (m *MockAppointmentRepository) CountActiveForSlot(ctx context.Context, doctorID uint, date time.Time, slot string) (int64, error) {
	if m.CountActiveForSlotFunc != nil {
		return m.CountActiveForSlotFunc(ctx, doctorID, date, slot)
	}
	// Default behavior: slot free
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.AppointmentRepository = (*MockAppointmentRepository)(nil)
