package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"maets/internal/utils" // JWT claims

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by JWTAuthMiddleware
const (
	UserIDKey = "userID" // Authenticated user ID (uint)
	EmailKey  = "email"  // Authenticated user email (string)
)

// TokenVerifier validates session tokens
type TokenVerifier interface {
	VerifyToken(token string) (*utils.Claims, error)
}

// JWTAuthMiddleware validates bearer tokens and stores the caller's identity in the context
func JWTAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")) // Extract the token string
		claims, err := verifier.VerifyToken(tokenStr)                            // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(UserIDKey, claims.ID)   // Store userID in context
		c.Set(EmailKey, claims.Email) // Store email in context
		c.Next()                      // Proceed to the next handler
	}
}

// UserID returns the authenticated user ID stored by JWTAuthMiddleware
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
