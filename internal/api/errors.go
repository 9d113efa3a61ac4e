package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path id parsing

	"maets/internal/middleware" // Authenticated identity
	"maets/internal/service"    // Error codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/samber/oops"     // Error context for logs
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// statusFor maps a service error code to an HTTP status
func statusFor(code string) int {
	switch code {
	case service.CodeValidation:
		return http.StatusBadRequest
	case service.CodeUnauthenticated, service.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case service.CodeForbidden:
		return http.StatusForbidden
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": "..."}. Internal errors are logged and answered with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(service.ErrorCode(err))
	if status == http.StatusInternalServerError {
		fields := logrus.Fields{
			"method": c.Request.Method,   // Request method
			"path":   c.Request.URL.Path, // Request path
			"error":  err.Error(),        // Error message
		}
		if oopsErr, ok := oops.AsOops(err); ok {
			for k, v := range oopsErr.Context() {
				fields[k] = v // Operation and other context
			}
		}
		logrus.WithFields(fields).Error("Request failed")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// pathID parses a positive numeric path parameter, answering 400 when it is not one
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// currentUser returns the authenticated user ID, answering 401 when it is missing
func currentUser(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(c) // Set by JWTAuthMiddleware
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return id, true
}
