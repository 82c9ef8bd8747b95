package services

import (
	"context"
	"testing"
	"time"

	"github.com/tharanikumar/medvault/domain"
	"github.com/tharanikumar/medvault/internal/logger"
	"github.com/tharanikumar/medvault/internal/mocks"
)

type appointmentTestDeps struct {
	aptRepo         *mocks.MockAppointmentRepository
	doctorRepo      *mocks.MockDoctorRepository
	notificationSvc *mocks.MockNotificationService
}

func createAppointmentServiceForTest(t *testing.T) (domain.AppointmentService, *appointmentTestDeps) {
	t.Helper()

	deps := &appointmentTestDeps{
		aptRepo:         mocks.NewMockAppointmentRepository(),
		doctorRepo:      mocks.NewMockDoctorRepository(),
		notificationSvc: mocks.NewMockNotificationService(),
	}
	deps.doctorRepo.FindByAccountFunc = func(ctx context.Context, accountID uint) (*domain.DoctorProfile, error) {
		return &domain.DoctorProfile{AccountID: accountID, HospitalID: 9, Available: true}, nil
	}

	svc := NewAppointmentService(deps.aptRepo, deps.doctorRepo, deps.notificationSvc, logger.New("error"))
	return svc, deps
}

func TestAppointmentServiceImpl_Book(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("successful booking is pending and notifies the doctor", func(t *testing.T) {
		svc, deps := createAppointmentServiceForTest(t)

		var created *domain.Appointment
		deps.aptRepo.CreateFunc = func(ctx context.Context, apt *domain.Appointment) error {
			apt.ID = 77
			created = apt
			return nil
		}

		apt, err := svc.Book(context.Background(), 1, 2, date, "10:00", "checkup")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if apt.Status != domain.StatusPending {
			t.Errorf("expected pending status, got %s", apt.Status)
		}
		if created.HospitalID != 9 {
			t.Errorf("expected hospital to be copied from the doctor profile, got %d", created.HospitalID)
		}
		if len(deps.notificationSvc.Notified) != 1 || deps.notificationSvc.Notified[0] != 2 {
			t.Errorf("expected doctor 2 to be notified, got %v", deps.notificationSvc.Notified)
		}
	})

	t.Run("unknown doctor", func(t *testing.T) {
		svc, deps := createAppointmentServiceForTest(t)
		deps.doctorRepo.FindByAccountFunc = nil

		if _, err := svc.Book(context.Background(), 1, 99, date, "10:00", ""); err != domain.ErrAccountNotFound {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("unavailable doctor", func(t *testing.T) {
		svc, deps := createAppointmentServiceForTest(t)
		deps.doctorRepo.FindByAccountFunc = func(ctx context.Context, accountID uint) (*domain.DoctorProfile, error) {
			return &domain.DoctorProfile{AccountID: accountID, Available: false}, nil
		}

		if _, err := svc.Book(context.Background(), 1, 2, date, "10:00", ""); err != domain.ErrDoctorUnavailable {
			t.Fatalf("expected ErrDoctorUnavailable, got %v", err)
		}
	})

	t.Run("occupied slot", func(t *testing.T) {
		svc, deps := createAppointmentServiceForTest(t)
		deps.aptRepo.CountActiveForSlotFunc = func(ctx context.Context, doctorID uint, d time.Time, slot string) (int64, error) {
			return 1, nil
		}

		if _, err := svc.Book(context.Background(), 1, 2, date, "10:00", ""); err != domain.ErrSlotTaken {
			t.Fatalf("expected ErrSlotTaken, got %v", err)
		}
	})
}

func TestAppointmentServiceImpl_Transition(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	existing := func(status domain.AppointmentStatus) *domain.Appointment {
		return &domain.Appointment{
			ID: 77, PatientID: 1, DoctorID: 2, Date: date, TimeSlot: "10:00",
			Status: status, UpdatedAt: time.Now(),
		}
	}

	tests := []struct {
		name           string
		actorID        uint
		current        domain.AppointmentStatus
		action         domain.AppointmentAction
		expectedStatus domain.AppointmentStatus
		expectedError  error
	}{
		{"doctor accepts pending", 2, domain.StatusPending, domain.ActionAccept, domain.StatusConfirmed, nil},
		{"doctor rejects pending", 2, domain.StatusPending, domain.ActionReject, domain.StatusCancelled, nil},
		{"doctor completes confirmed", 2, domain.StatusConfirmed, domain.ActionComplete, domain.StatusCompleted, nil},
		{"doctor rejects confirmed", 2, domain.StatusConfirmed, domain.ActionReject, domain.StatusCancelled, nil},
		{"complete on pending rejected", 2, domain.StatusPending, domain.ActionComplete, "", domain.ErrInvalidTransition},
		{"accept on confirmed rejected", 2, domain.StatusConfirmed, domain.ActionAccept, "", domain.ErrInvalidTransition},
		{"completed is terminal", 2, domain.StatusCompleted, domain.ActionReject, "", domain.ErrInvalidTransition},
		{"cancelled is terminal", 2, domain.StatusCancelled, domain.ActionAccept, "", domain.ErrInvalidTransition},
		{"unknown action rejected", 2, domain.StatusPending, domain.AppointmentAction("approve"), "", domain.ErrInvalidTransition},
		{"other doctor forbidden", 3, domain.StatusPending, domain.ActionAccept, "", domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := createAppointmentServiceForTest(t)
			deps.aptRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Appointment, error) {
				return existing(tt.current), nil
			}

			apt, err := svc.Transition(context.Background(), tt.actorID, 77, tt.action)

			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if len(deps.notificationSvc.Notified) != 0 {
					t.Error("expected no notification on rejected transition")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if apt.Status != tt.expectedStatus {
				t.Errorf("expected status %s, got %s", tt.expectedStatus, apt.Status)
			}
			if len(deps.notificationSvc.Notified) != 1 || deps.notificationSvc.Notified[0] != 1 {
				t.Errorf("expected patient 1 to be notified, got %v", deps.notificationSvc.Notified)
			}
		})
	}

	t.Run("missing appointment", func(t *testing.T) {
		svc, _ := createAppointmentServiceForTest(t)
		if _, err := svc.Transition(context.Background(), 2, 999, domain.ActionAccept); err != domain.ErrAppointmentNotFound {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})

	t.Run("concurrent writer wins the guard", func(t *testing.T) {
		svc, deps := createAppointmentServiceForTest(t)
		deps.aptRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Appointment, error) {
			return existing(domain.StatusPending), nil
		}
		deps.aptRepo.UpdateStatusFunc = func(ctx context.Context, id uint, status domain.AppointmentStatus, seen time.Time) (bool, error) {
			return false, nil
		}

		if _, err := svc.Transition(context.Background(), 2, 77, domain.ActionAccept); err != domain.ErrInvalidTransition {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestAppointmentServiceImpl_ListForAccount(t *testing.T) {
	svc, deps := createAppointmentServiceForTest(t)
	ctx := context.Background()

	var calls []string
	deps.aptRepo.ListByPatientFunc = func(c context.Context, id uint) ([]domain.Appointment, error) {
		calls = append(calls, "patient")
		return nil, nil
	}
	deps.aptRepo.ListByDoctorFunc = func(c context.Context, id uint) ([]domain.Appointment, error) {
		calls = append(calls, "doctor")
		return nil, nil
	}
	deps.aptRepo.ListByHospitalFunc = func(c context.Context, id uint) ([]domain.Appointment, error) {
		calls = append(calls, "hospital")
		return nil, nil
	}

	for _, role := range []domain.Role{domain.RolePatient, domain.RoleDoctor, domain.RoleHospital} {
		if _, err := svc.ListForAccount(ctx, 1, role); err != nil {
			t.Fatalf("unexpected error for %s: %v", role, err)
		}
	}
	if len(calls) != 3 || calls[0] != "patient" || calls[1] != "doctor" || calls[2] != "hospital" {
		t.Errorf("unexpected listing dispatch: %v", calls)
	}

	if _, err := svc.ListForAccount(ctx, 1, domain.Role("admin")); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
