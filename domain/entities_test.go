package domain

import (
	"testing"
	"time"
)

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		role  Role
		valid bool
	}{
		{RolePatient, true},
		{RoleDoctor, true},
		{RoleHospital, true},
		{Role("admin"), false},
		{Role(""), false},
		{Role("Patient"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.valid {
				t.Errorf("Role(%q).Valid() = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestVerificationCode_Active(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		code   VerificationCode
		at     time.Time
		active bool
	}{
		{
			name:   "fresh code is active",
			code:   VerificationCode{IssuedAt: now, ExpiresAt: now.Add(10 * time.Minute)},
			at:     now.Add(time.Minute),
			active: true,
		},
		{
			name:   "active until the last moment",
			code:   VerificationCode{IssuedAt: now, ExpiresAt: now.Add(10 * time.Minute)},
			at:     now.Add(10*time.Minute - time.Second),
			active: true,
		},
		{
			name:   "expired at the boundary",
			code:   VerificationCode{IssuedAt: now, ExpiresAt: now.Add(10 * time.Minute)},
			at:     now.Add(10 * time.Minute),
			active: false,
		},
		{
			name:   "expired past the window",
			code:   VerificationCode{IssuedAt: now, ExpiresAt: now.Add(10 * time.Minute)},
			at:     now.Add(11 * time.Minute),
			active: false,
		},
		{
			name:   "consumed code is never active",
			code:   VerificationCode{IssuedAt: now, ExpiresAt: now.Add(10 * time.Minute), Consumed: true},
			at:     now.Add(time.Minute),
			active: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.Active(tt.at); got != tt.active {
				t.Errorf("Active() = %v, want %v", got, tt.active)
			}
		})
	}
}
