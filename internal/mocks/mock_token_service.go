package mocks

import (
	"time"

	"github.com/tharanikumar/medvault/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(accountID uint, role domain.Role, sessionID string) (string, error)
	GenerateRefreshTokenFunc func(accountID uint, role domain.Role, sessionID string) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken issues an access token
func (m *MockTokenService) GenerateAccessToken(accountID uint, role domain.Role, sessionID string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(accountID, role, sessionID)
	}
	return "access_token", nil
}

// GenerateRefreshToken issues a refresh token
func (m *MockTokenService) GenerateRefreshToken(accountID uint, role domain.Role, sessionID string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(accountID, role, sessionID)
	}
	return "refresh_token", nil
}

// ValidateAccessToken parses and validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	// Default behavior: claims for account 1
	return &domain.TokenClaims{
		AccountID: 1,
		Role:      domain.RolePatient,
		SessionID: "session_1",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(15 * time.Minute).Unix(),
	}, nil
}

// ValidateRefreshToken parses and validates a refresh token
func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	return &domain.TokenClaims{
		AccountID: 1,
		Role:      domain.RolePatient,
		SessionID: "session_1",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(168 * time.Hour).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
