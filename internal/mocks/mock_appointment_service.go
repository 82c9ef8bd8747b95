package mocks

import (
	"context"
	"time"

	"github.com/tharanikumar/medvault/domain"
)

// MockAppointmentService implements domain.AppointmentService interface for testing
type MockAppointmentService struct {
	BookFunc           func(ctx context.Context, patientID, doctorID uint, date time.Time, slot, reason string) (*domain.Appointment, error)
	TransitionFunc     func(ctx context.Context, actorID, appointmentID uint, action domain.AppointmentAction) (*domain.Appointment, error)
	ListForAccountFunc func(ctx context.Context, accountID uint, role domain.Role) ([]domain.Appointment, error)
}

// NewMockAppointmentService creates a new MockAppointmentService with default behaviors
func NewMockAppointmentService() *MockAppointmentService {
	return &MockAppointmentService{}
}

// Book creates a pending appointment
func (m *MockAppointmentService) Book(ctx context.Context, patientID, doctorID uint, date time.Time, slot, reason string) (*domain.Appointment, error) {
	if m.BookFunc != nil {
		return m.BookFunc(ctx, patientID, doctorID, date, slot, reason)
	}
	return &domain.Appointment{
		ID: 1, PatientID: patientID, DoctorID: doctorID,
		Date: date, TimeSlot: slot, Status: domain.StatusPending, Reason: reason,
	}, nil
}

// Transition applies a doctor action
func (m *MockAppointmentService) Transition(ctx context.Context, actorID, appointmentID uint, action domain.AppointmentAction) (*domain.Appointment, error) {
	if m.TransitionFunc != nil {
		return m.TransitionFunc(ctx, actorID, appointmentID, action)
	}
	return nil, domain.ErrAppointmentNotFound
}

// ListForAccount lists appointments by role
func (m *MockAppointmentService) ListForAccount(ctx context.Context, accountID uint, role domain.Role) ([]domain.Appointment, error) {
	if m.ListForAccountFunc != nil {
		return m.ListForAccountFunc(ctx, accountID, role)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.AppointmentService = (*MockAppointmentService)(nil)
