package domain

import "time"

// Role identifies the three fixed account types in the system
type Role string

const (
	RolePatient  Role = "patient"
	RoleDoctor   Role = "doctor"
	RoleHospital Role = "hospital"
)

// Valid reports whether the role is one of the three supported values
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleHospital:
		return true
	}
	return false
}

// Purpose tags why a verification code was issued
type Purpose string

const (
	PurposeRegistration Purpose = "registration"
	PurposeLogin        Purpose = "login"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentAction is a doctor-side transition request
type AppointmentAction string

const (
	ActionAccept   AppointmentAction = "accept"
	ActionReject   AppointmentAction = "reject"
	ActionComplete AppointmentAction = "complete"
)

// Account represents a registered identity in the system
type Account struct {
	ID              uint
	Email           string
	PasswordHash    string `gorm:"column:password"`
	Role            Role
	Verified        bool
	ProfileComplete bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	LastLoginAt     *time.Time
}

// VerificationCode is one row of the append-only verification ledger
type VerificationCode struct {
	ID        uint
	AccountID uint
	Code      string
	Purpose   Purpose
	IssuedAt  time.Time
	ExpiresAt time.Time
	Consumed  bool
}

// Active reports whether the code can still be validated at t
func (v *VerificationCode) Active(t time.Time) bool {
	return !v.Consumed && t.Before(v.ExpiresAt)
}

// AuthSession is the server-held state of one client's auth flow,
// keyed by an opaque token presented by the client
type AuthSession struct {
	ID               string
	PendingAccountID uint
	PendingPurpose   Purpose
	AccountID        uint
	Role             Role
	Authenticated    bool
	CreatedAt        time.Time
	ExpiresAt        time.Time
}

// OTPChallenge is returned when a flow issues a code and moves to CodeSent
type OTPChallenge struct {
	SessionID string
	AccountID uint
	Purpose   Purpose
	Delivered bool
	// DevCode carries the code in-band when delivery failed and the
	// service runs in development mode. Empty otherwise.
	DevCode string
}

// AuthResult represents a successfully verified flow
type AuthResult struct {
	Account         *Account
	SessionID       string
	AccessToken     string
	RefreshToken    string
	ExpiresIn       int64
	RequiresProfile bool
}

// Appointment represents a booking between a patient and a doctor.
// HospitalID is the doctor's affiliation copied at booking time, 0 when
// the doctor is unaffiliated.
type Appointment struct {
	ID         uint
	PatientID  uint
	DoctorID   uint
	HospitalID uint
	Date       time.Time
	TimeSlot   string
	Status     AppointmentStatus
	Reason     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DoctorProfile holds the booking-relevant attributes of a doctor account
type DoctorProfile struct {
	ID              uint
	AccountID       uint
	FirstName       string
	LastName        string
	Specialization  string
	HospitalID      uint
	ConsultationFee float64
	Available       bool
}

// Notification is a user-facing alert delivered to an account
type Notification struct {
	ID        uint
	AccountID uint
	Title     string
	Body      string
	Category  string
	Read      bool
	CreatedAt time.Time
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	AccountID uint   `json:"account_id"`
	Role      Role   `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
