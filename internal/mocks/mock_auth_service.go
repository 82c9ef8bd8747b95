package mocks

import (
	"context"

	"github.com/tharanikumar/medvault/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	StartRegistrationFunc  func(ctx context.Context, email, password string, role domain.Role) (*domain.OTPChallenge, error)
	VerifyRegistrationFunc func(ctx context.Context, sessionID, code string) (*domain.AuthResult, error)
	StartLoginFunc         func(ctx context.Context, email, password string) (*domain.OTPChallenge, error)
	VerifyLoginFunc        func(ctx context.Context, sessionID, code string) (*domain.AuthResult, error)
	RefreshFunc            func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc             func(ctx context.Context, sessionID string) error
	AccountFunc            func(ctx context.Context, accountID uint) (*domain.Account, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// StartRegistration opens a registration challenge
func (m *MockAuthService) StartRegistration(ctx context.Context, email, password string, role domain.Role) (*domain.OTPChallenge, error) {
	if m.StartRegistrationFunc != nil {
		return m.StartRegistrationFunc(ctx, email, password, role)
	}
	return &domain.OTPChallenge{SessionID: "session_1", AccountID: 1, Purpose: domain.PurposeRegistration, Delivered: true}, nil
}

// VerifyRegistration completes a registration challenge
func (m *MockAuthService) VerifyRegistration(ctx context.Context, sessionID, code string) (*domain.AuthResult, error) {
	if m.VerifyRegistrationFunc != nil {
		return m.VerifyRegistrationFunc(ctx, sessionID, code)
	}
	return &domain.AuthResult{SessionID: sessionID, AccessToken: "access_token", RefreshToken: "refresh_token"}, nil
}

// StartLogin opens a login challenge
func (m *MockAuthService) StartLogin(ctx context.Context, email, password string) (*domain.OTPChallenge, error) {
	if m.StartLoginFunc != nil {
		return m.StartLoginFunc(ctx, email, password)
	}
	return &domain.OTPChallenge{SessionID: "session_1", AccountID: 1, Purpose: domain.PurposeLogin, Delivered: true}, nil
}

// VerifyLogin completes a login challenge
func (m *MockAuthService) VerifyLogin(ctx context.Context, sessionID, code string) (*domain.AuthResult, error) {
	if m.VerifyLoginFunc != nil {
		return m.VerifyLoginFunc(ctx, sessionID, code)
	}
	return &domain.AuthResult{SessionID: sessionID, AccessToken: "access_token", RefreshToken: "refresh_token"}, nil
}

// Refresh exchanges a refresh token for a new access token
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return &domain.AuthResult{SessionID: "session_1", AccessToken: "access_token", RefreshToken: refreshToken}, nil
}

// Logout terminates a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// Account loads the account behind an authenticated session
func (m *MockAuthService) Account(ctx context.Context, accountID uint) (*domain.Account, error) {
	if m.AccountFunc != nil {
		return m.AccountFunc(ctx, accountID)
	}
	return nil, domain.ErrAccountNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
