package middleware

import (
	"context"  // Context for the role lookup
	"net/http" // HTTP status codes

	"maets/internal/service" // Error codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// AdminChecker decides whether a user holds the admin role
type AdminChecker interface {
	RequireAdmin(ctx context.Context, userID uint) error
}

// AdminOnlyMiddleware checks the user's roles from the database on each request.
// It must run after JWTAuthMiddleware.
func AdminOnlyMiddleware(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := UserID(c) // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		err := checker.RequireAdmin(c.Request.Context(), userID)
		switch {
		case err == nil:
			c.Next() // If admin, proceed to the next handler
		case service.IsCode(err, service.CodeForbidden):
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: Admins only."})
		default:
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Caller
				"error":   err.Error(), // Error message
			}).Error("Role lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}
