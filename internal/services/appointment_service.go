package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tharanikumar/medvault/domain"
	"github.com/tharanikumar/medvault/internal/logger"
)

// AppointmentServiceImpl implements domain.AppointmentService
type AppointmentServiceImpl struct {
	aptRepo         domain.AppointmentRepository
	doctorRepo      domain.DoctorRepository
	notificationSvc domain.NotificationService
	log             *logger.Logger
}

// NewAppointmentService creates a new appointment lifecycle manager
func NewAppointmentService(
	aptRepo domain.AppointmentRepository,
	doctorRepo domain.DoctorRepository,
	notificationSvc domain.NotificationService,
	log *logger.Logger,
) domain.AppointmentService {
	return &AppointmentServiceImpl{
		aptRepo:         aptRepo,
		doctorRepo:      doctorRepo,
		notificationSvc: notificationSvc,
		log:             log,
	}
}

// Book implements domain.AppointmentService. Patients can only create
// pending appointments; the confirmation step stays with the doctor.
func (s *AppointmentServiceImpl) Book(ctx context.Context, patientID, doctorID uint, date time.Time, slot, reason string) (*domain.Appointment, error) {
	doctor, err := s.doctorRepo.FindByAccount(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.Available {
		return nil, domain.ErrDoctorUnavailable
	}

	taken, err := s.aptRepo.CountActiveForSlot(ctx, doctorID, date, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if taken > 0 {
		return nil, domain.ErrSlotTaken
	}

	apt := &domain.Appointment{
		PatientID:  patientID,
		DoctorID:   doctorID,
		HospitalID: doctor.HospitalID,
		Date:       date,
		TimeSlot:   slot,
		Status:     domain.StatusPending,
		Reason:     reason,
	}
	if err := s.aptRepo.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.notificationSvc.Notify(ctx, doctorID, "New Appointment",
		fmt.Sprintf("New appointment request for %s at %s", date.Format("2006-01-02"), slot),
		"appointment")

	return apt, nil
}

// transitionTable maps (current status, action) to the next status.
// Edges outside the table are rejected: pending moves to confirmed or
// cancelled, confirmed moves to completed or cancelled, completed and
// cancelled are terminal.
func nextStatus(current domain.AppointmentStatus, action domain.AppointmentAction) (domain.AppointmentStatus, bool) {
	switch current {
	case domain.StatusPending:
		switch action {
		case domain.ActionAccept:
			return domain.StatusConfirmed, true
		case domain.ActionReject:
			return domain.StatusCancelled, true
		}
	case domain.StatusConfirmed:
		switch action {
		case domain.ActionComplete:
			return domain.StatusCompleted, true
		case domain.ActionReject:
			return domain.StatusCancelled, true
		}
	}
	return "", false
}

// Transition implements domain.AppointmentService. Only the appointment's
// own doctor may transition it.
func (s *AppointmentServiceImpl) Transition(ctx context.Context, actorID, appointmentID uint, action domain.AppointmentAction) (*domain.Appointment, error) {
	apt, err := s.aptRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if apt.DoctorID != actorID {
		return nil, domain.ErrForbidden
	}

	status, ok := nextStatus(apt.Status, action)
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.aptRepo.UpdateStatus(ctx, apt.ID, status, apt.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	if !updated {
		// A concurrent action moved the appointment first
		return nil, domain.ErrInvalidTransition
	}

	apt.Status = status

	s.notificationSvc.Notify(ctx, apt.PatientID, "Appointment Update",
		fmt.Sprintf("Your appointment on %s at %s is now %s", apt.Date.Format("2006-01-02"), apt.TimeSlot, status),
		"appointment")

	return apt, nil
}

// ListForAccount implements domain.AppointmentService
func (s *AppointmentServiceImpl) ListForAccount(ctx context.Context, accountID uint, role domain.Role) ([]domain.Appointment, error) {
	switch role {
	case domain.RolePatient:
		return s.aptRepo.ListByPatient(ctx, accountID)
	case domain.RoleDoctor:
		return s.aptRepo.ListByDoctor(ctx, accountID)
	case domain.RoleHospital:
		return s.aptRepo.ListByHospital(ctx, accountID)
	}
	return nil, domain.ErrInvalidRole
}
