package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tharanikumar/medvault/domain"
	"github.com/tharanikumar/medvault/internal/mocks"
)

func performWithAuth(t *testing.T, mw gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	reached := false

	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w, reached
}

func validClaims() *domain.TokenClaims {
	return &domain.TokenClaims{
		AccountID: 1,
		Role:      domain.RolePatient,
		SessionID: "s1",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(15 * time.Minute).Unix(),
	}
}

func authenticatedSession() *domain.AuthSession {
	return &domain.AuthSession{
		ID: "s1", AccountID: 1, Role: domain.RolePatient, Authenticated: true,
		CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mocks.MockTokenService, *mocks.MockSessionRepository, *mocks.MockAccountRepository)
		expectedStatus int
		expectReached  bool
	}{
		{
			name:       "valid token with verified account passes",
			authHeader: "Bearer good",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, accountRepo *mocks.MockAccountRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) { return validClaims(), nil }
				sessionRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.AuthSession, error) { return authenticatedSession(), nil }
				accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
					return &domain.Account{ID: 1, Role: domain.RolePatient, Verified: true}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectReached:  true,
		},
		{
			name:           "missing header",
			authHeader:     "",
			setupMocks:     func(*mocks.MockTokenService, *mocks.MockSessionRepository, *mocks.MockAccountRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authHeader:     "Token abc",
			setupMocks:     func(*mocks.MockTokenService, *mocks.MockSessionRepository, *mocks.MockAccountRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer old",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, accountRepo *mocks.MockAccountRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "session gone",
			authHeader: "Bearer good",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, accountRepo *mocks.MockAccountRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) { return validClaims(), nil }
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "session not authenticated",
			authHeader: "Bearer good",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, accountRepo *mocks.MockAccountRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) { return validClaims(), nil }
				sessionRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.AuthSession, error) {
					return &domain.AuthSession{ID: id, PendingAccountID: 1, PendingPurpose: domain.PurposeLogin}, nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "session account mismatch",
			authHeader: "Bearer good",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, accountRepo *mocks.MockAccountRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) { return validClaims(), nil }
				sessionRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.AuthSession, error) {
					s := authenticatedSession()
					s.AccountID = 2
					return s, nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			sessionRepo := mocks.NewMockSessionRepository()
			accountRepo := mocks.NewMockAccountRepository()
			tt.setupMocks(tokenSvc, sessionRepo, accountRepo)

			mw := AuthMiddleware(tokenSvc, sessionRepo, accountRepo)
			w, reached := performWithAuth(t, mw, tt.authHeader)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if reached != tt.expectReached {
				t.Errorf("expected handler reached=%v, got %v", tt.expectReached, reached)
			}
		})
	}
}

func TestAuthMiddleware_UnverifiedAccountClearsSession(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	sessionRepo := mocks.NewMockSessionRepository()
	accountRepo := mocks.NewMockAccountRepository()

	tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) { return validClaims(), nil }
	sessionRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.AuthSession, error) { return authenticatedSession(), nil }
	accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
		return &domain.Account{ID: 1, Role: domain.RolePatient, Verified: false}, nil
	}

	deleted := ""
	sessionRepo.DeleteFunc = func(ctx context.Context, id string) error {
		deleted = id
		return nil
	}

	mw := AuthMiddleware(tokenSvc, sessionRepo, accountRepo)
	w, reached := performWithAuth(t, mw, "Bearer good")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if reached {
		t.Error("expected handler to be blocked")
	}
	if deleted != "s1" {
		t.Errorf("expected session s1 to be cleared, got %q", deleted)
	}
}
