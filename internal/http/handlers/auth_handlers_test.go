package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tharanikumar/medvault/domain"
	"github.com/tharanikumar/medvault/internal/mocks"
)

func performJSON(t *testing.T, handler gin.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return out
}

func TestAuthHandlers_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    RegisterRequest
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name:        "successful registration start",
			requestBody: RegisterRequest{Email: "new@example.com", Password: "password123", Role: "patient"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.StartRegistrationFunc = func(ctx context.Context, email, password string, role domain.Role) (*domain.OTPChallenge, error) {
					return &domain.OTPChallenge{SessionID: "s1", AccountID: 1, Purpose: domain.PurposeRegistration, Delivered: true}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing email",
			requestBody:    RegisterRequest{Password: "password123", Role: "patient"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			requestBody:    RegisterRequest{Email: "new@example.com", Password: "short", Role: "patient"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "duplicate email",
			requestBody: RegisterRequest{Email: "taken@example.com", Password: "password123", Role: "patient"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.StartRegistrationFunc = func(ctx context.Context, email, password string, role domain.Role) (*domain.OTPChallenge, error) {
					return nil, domain.ErrIdentityExists
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "invalid role",
			requestBody: RegisterRequest{Email: "new@example.com", Password: "password123", Role: "admin"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.StartRegistrationFunc = func(ctx context.Context, email, password string, role domain.Role) (*domain.OTPChallenge, error) {
					return nil, domain.ErrInvalidRole
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "resend throttled",
			requestBody: RegisterRequest{Email: "new@example.com", Password: "password123", Role: "patient"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.StartRegistrationFunc = func(ctx context.Context, email, password string, role domain.Role) (*domain.OTPChallenge, error) {
					return nil, domain.ErrResendThrottled
				}
			},
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			h := NewAuthHandlers(authSvc)

			w := performJSON(t, h.Register, http.MethodPost, "/auth/register", tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    LoginRequest
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name:           "successful login start without password",
			requestBody:    LoginRequest{Email: "user@example.com"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "unknown email",
			requestBody: LoginRequest{Email: "nobody@example.com"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.StartLoginFunc = func(ctx context.Context, email, password string) (*domain.OTPChallenge, error) {
					return nil, domain.ErrAccountNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "bad credentials under password gate",
			requestBody: LoginRequest{Email: "user@example.com", Password: "wrong"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.StartLoginFunc = func(ctx context.Context, email, password string) (*domain.OTPChallenge, error) {
					return nil, domain.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			h := NewAuthHandlers(authSvc)

			w := performJSON(t, h.Login, http.MethodPost, "/auth/login", tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthHandlers_Login_DevCodeExposure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authSvc := mocks.NewMockAuthService()
	authSvc.StartLoginFunc = func(ctx context.Context, email, password string) (*domain.OTPChallenge, error) {
		return &domain.OTPChallenge{SessionID: "s1", Purpose: domain.PurposeLogin, Delivered: false, DevCode: "111222"}, nil
	}
	h := NewAuthHandlers(authSvc)

	w := performJSON(t, h.Login, http.MethodPost, "/auth/login", LoginRequest{Email: "user@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	if data["dev_code"] != "111222" {
		t.Errorf("expected dev_code in response, got %v", data)
	}
	if data["delivered"] != false {
		t.Errorf("expected delivered=false, got %v", data["delivered"])
	}
}

func TestAuthHandlers_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    VerifyRequest
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		wantRegCall    bool
		wantLoginCall  bool
	}{
		{
			name:           "registration verify routes to registration flow",
			requestBody:    VerifyRequest{SessionID: "s1", Purpose: "registration", Code: "123456"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusOK,
			wantRegCall:    true,
		},
		{
			name:           "login verify routes to login flow",
			requestBody:    VerifyRequest{SessionID: "s1", Purpose: "login", Code: "123456"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusOK,
			wantLoginCall:  true,
		},
		{
			name:           "unknown purpose rejected by validation",
			requestBody:    VerifyRequest{SessionID: "s1", Purpose: "reset", Code: "123456"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "expired session",
			requestBody: VerifyRequest{SessionID: "s1", Purpose: "login", Code: "123456"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.VerifyLoginFunc = func(ctx context.Context, sessionID, code string) (*domain.AuthResult, error) {
					return nil, domain.ErrSessionExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "wrong code",
			requestBody: VerifyRequest{SessionID: "s1", Purpose: "registration", Code: "000000"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.VerifyRegistrationFunc = func(ctx context.Context, sessionID, code string) (*domain.AuthResult, error) {
					return nil, domain.ErrInvalidOrExpiredCode
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()

			regCalled, loginCalled := false, false
			account := &domain.Account{ID: 1, Email: "user@example.com", Role: domain.RolePatient}
			authSvc.VerifyRegistrationFunc = func(ctx context.Context, sessionID, code string) (*domain.AuthResult, error) {
				regCalled = true
				return &domain.AuthResult{Account: account, SessionID: sessionID, AccessToken: "a", RefreshToken: "r"}, nil
			}
			authSvc.VerifyLoginFunc = func(ctx context.Context, sessionID, code string) (*domain.AuthResult, error) {
				loginCalled = true
				return &domain.AuthResult{Account: account, SessionID: sessionID, AccessToken: "a", RefreshToken: "r"}, nil
			}
			tt.setupMocks(authSvc)
			h := NewAuthHandlers(authSvc)

			w := performJSON(t, h.Verify, http.MethodPost, "/auth/verify", tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.wantRegCall && !regCalled {
				t.Error("expected registration verify to be called")
			}
			if tt.wantLoginCall && !loginCalled {
				t.Error("expected login verify to be called")
			}
		})
	}
}

func TestAuthHandlers_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful refresh", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RefreshFunc = func(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
			return &domain.AuthResult{AccessToken: "fresh", ExpiresIn: 900}, nil
		}
		h := NewAuthHandlers(authSvc)

		w := performJSON(t, h.Refresh, http.MethodPost, "/auth/refresh", RefreshRequest{RefreshToken: "r"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		data := decodeBody(t, w)["data"].(map[string]interface{})
		if data["access_token"] != "fresh" {
			t.Errorf("expected access_token fresh, got %v", data["access_token"])
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RefreshFunc = func(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
			return nil, domain.ErrTokenInvalid
		}
		h := NewAuthHandlers(authSvc)

		w := performJSON(t, h.Refresh, http.MethodPost, "/auth/refresh", RefreshRequest{RefreshToken: "bad"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
