package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharanikumar/medvault/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents the registration entry step
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// LoginRequest represents the login entry step. Password is only
// enforced when the password-gated login policy is enabled.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// VerifyRequest represents a code submission for either flow
type VerifyRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Purpose   string `json:"purpose" binding:"required,oneof=registration login"`
	Code      string `json:"code" binding:"required"`
}

// RefreshRequest represents token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register handles the registration entry step
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := h.authSvc.StartRegistration(c.Request.Context(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		switch err {
		case domain.ErrIdentityExists:
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered. Please login."})
		case domain.ErrInvalidRole:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		case domain.ErrResendThrottled:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait before requesting a new code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start registration"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": challengeResponse(challenge)})
}

// Login handles the login entry step
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := h.authSvc.StartLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrAccountNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "No account found with this email. Please register first."})
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case domain.ErrResendThrottled:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait before requesting a new code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start login"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": challengeResponse(challenge)})
}

// Verify handles code submission for both flows
func (h *AuthHandlers) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var result *domain.AuthResult
	var err error
	if domain.Purpose(req.Purpose) == domain.PurposeRegistration {
		result, err = h.authSvc.VerifyRegistration(c.Request.Context(), req.SessionID, req.Code)
	} else {
		result, err = h.authSvc.VerifyLogin(c.Request.Context(), req.SessionID, req.Code)
	}
	if err != nil {
		switch err {
		case domain.ErrSessionExpired:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please start again."})
		case domain.ErrInvalidOrExpiredCode:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP. Please try again."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": authResultResponse(result)})
}

// Refresh handles token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch err {
		case domain.ErrTokenInvalid, domain.ErrTokenExpired:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		case domain.ErrSessionExpired:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
		},
	})
}

// Me handles getting the authenticated account (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	accountID, exists := c.Get("account_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account ID not found in context"})
		return
	}

	account, err := h.authSvc.Account(c.Request.Context(), accountID.(uint))
	if err != nil {
		if err == domain.ErrAccountNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":               account.ID,
			"email":            account.Email,
			"role":             account.Role,
			"verified":         account.Verified,
			"profile_complete": account.ProfileComplete,
			"created_at":       account.CreatedAt,
			"last_login_at":    account.LastLoginAt,
		},
	})
}

// Logout handles logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID not found"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Logged out successfully"},
	})
}

func challengeResponse(ch *domain.OTPChallenge) gin.H {
	resp := gin.H{
		"session_id": ch.SessionID,
		"purpose":    ch.Purpose,
		"delivered":  ch.Delivered,
		"message":    "OTP sent to your email. Please enter it to continue.",
	}
	if ch.DevCode != "" {
		resp["dev_code"] = ch.DevCode
	}
	return resp
}

func authResultResponse(result *domain.AuthResult) gin.H {
	return gin.H{
		"access_token":     result.AccessToken,
		"refresh_token":    result.RefreshToken,
		"token_type":       "Bearer",
		"expires_in":       result.ExpiresIn,
		"requires_profile": result.RequiresProfile,
		"account": gin.H{
			"id":    result.Account.ID,
			"email": result.Account.Email,
			"role":  result.Account.Role,
		},
	}
}
