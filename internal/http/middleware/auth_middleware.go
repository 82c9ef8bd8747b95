package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tharanikumar/medvault/domain"
)

// AuthMiddleware creates authentication middleware. Besides token and
// session validation it enforces the standing verified-account gate: an
// authenticated session whose account is no longer verified is cleared
// and sent back to the flow entry, on every request.
func AuthMiddleware(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository, accountRepo domain.AccountRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(tokenParts[1])
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		if claims.SessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
			c.Abort()
			return
		}

		session, err := sessionRepo.FindByID(c.Request.Context(), claims.SessionID)
		if err != nil || session == nil || !session.Authenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
			c.Abort()
			return
		}
		if session.AccountID != claims.AccountID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session account mismatch"})
			c.Abort()
			return
		}

		account, err := accountRepo.FindByID(c.Request.Context(), claims.AccountID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			c.Abort()
			return
		}
		if !account.Verified {
			// Back to Idle: clear the session before rejecting
			_ = sessionRepo.Delete(c.Request.Context(), claims.SessionID)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not verified"})
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("account_role", string(claims.Role))
		c.Set("session_id", claims.SessionID)

		c.Next()
	})
}
