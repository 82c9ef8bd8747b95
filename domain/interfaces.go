package domain

import (
	"context"
	"time"
)

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id uint) (*Account, error)
	MarkVerified(ctx context.Context, id uint) error
	MarkProfileComplete(ctx context.Context, id uint) error
	SetLastLogin(ctx context.Context, id uint, at time.Time) error
}

// CodeRepository defines access to the append-only verification ledger
type CodeRepository interface {
	Append(ctx context.Context, code *VerificationCode) error
	// FindLatestActive returns the most recently issued unconsumed code
	// for the (account, purpose) pair, or ErrInvalidOrExpiredCode when
	// none exists. Expiry is not checked here; callers evaluate it.
	FindLatestActive(ctx context.Context, accountID uint, purpose Purpose) (*VerificationCode, error)
	// Consume marks the code consumed. It must be exclusive: given
	// concurrent calls for the same id, exactly one returns true.
	Consume(ctx context.Context, id uint) (bool, error)
}

// SessionRepository defines auth session persistence
type SessionRepository interface {
	Save(ctx context.Context, session *AuthSession) error
	FindByID(ctx context.Context, sessionID string) (*AuthSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// AppointmentRepository defines appointment data access operations
type AppointmentRepository interface {
	Create(ctx context.Context, apt *Appointment) error
	FindByID(ctx context.Context, id uint) (*Appointment, error)
	// UpdateStatus writes the new status guarded by the previously read
	// updated_at value. Returns false when a concurrent writer got there
	// first.
	UpdateStatus(ctx context.Context, id uint, status AppointmentStatus, seenUpdatedAt time.Time) (bool, error)
	ListByPatient(ctx context.Context, patientID uint) ([]Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uint) ([]Appointment, error)
	ListByHospital(ctx context.Context, hospitalID uint) ([]Appointment, error)
	// CountActiveForSlot counts non-cancelled appointments occupying the
	// doctor's (date, slot) pair.
	CountActiveForSlot(ctx context.Context, doctorID uint, date time.Time, slot string) (int64, error)
}

// DoctorRepository defines access to doctor booking attributes
type DoctorRepository interface {
	Upsert(ctx context.Context, profile *DoctorProfile) error
	FindByAccount(ctx context.Context, accountID uint) (*DoctorProfile, error)
	Search(ctx context.Context, specialization string) ([]DoctorProfile, error)
}

// NotificationRepository defines notification persistence
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByAccount(ctx context.Context, accountID uint, unreadOnly bool) ([]Notification, error)
	// MarkRead flips the read flag when the notification belongs to
	// accountID. Returns false when no such row exists.
	MarkRead(ctx context.Context, accountID, id uint) (bool, error)
}

// CodeGenerator produces fixed-length numeric one-time codes
type CodeGenerator interface {
	Generate(length int) (string, error)
}

// OTPService defines the verification ledger operations
type OTPService interface {
	// Issue generates and records a code and delivers it out-of-band.
	// delivered is false when the delivery channel failed; the code is
	// still valid and the caller decides whether to surface it in-band.
	Issue(ctx context.Context, accountID uint, purpose Purpose) (code string, delivered bool, err error)
	// Validate checks the submitted code against the most recently
	// issued active code and consumes it exactly once on success.
	Validate(ctx context.Context, accountID uint, purpose Purpose, code string) error
}

// AuthService defines the session-scoped authentication flows
type AuthService interface {
	StartRegistration(ctx context.Context, email, password string, role Role) (*OTPChallenge, error)
	VerifyRegistration(ctx context.Context, sessionID, code string) (*AuthResult, error)
	StartLogin(ctx context.Context, email, password string) (*OTPChallenge, error)
	VerifyLogin(ctx context.Context, sessionID, code string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Account(ctx context.Context, accountID uint) (*Account, error)
}

// AppointmentService defines the appointment lifecycle operations
type AppointmentService interface {
	Book(ctx context.Context, patientID, doctorID uint, date time.Time, slot, reason string) (*Appointment, error)
	Transition(ctx context.Context, actorID, appointmentID uint, action AppointmentAction) (*Appointment, error)
	ListForAccount(ctx context.Context, accountID uint, role Role) ([]Appointment, error)
}

// NotificationService defines the notification sink
type NotificationService interface {
	// Notify is fire-and-forget: delivery failures are absorbed and
	// logged, never surfaced to the triggering operation.
	Notify(ctx context.Context, accountID uint, title, body, category string)
	List(ctx context.Context, accountID uint, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, accountID, id uint) error
}

// PasswordService defines credential hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(accountID uint, role Role, sessionID string) (string, error)
	GenerateRefreshToken(accountID uint, role Role, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// Mailer is the out-of-band delivery channel for verification codes
type Mailer interface {
	SendCode(to, code string, purpose Purpose) error
}
