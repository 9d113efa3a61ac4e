package api

import (
	"net/http" // HTTP status codes

	"maets/internal/service" // Auth service

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for registration
type RegisterRequest struct {
	Email    string   `json:"email"`    // Account email
	Password string   `json:"password"` // Plain password, hashed by the service
	Roles    []string `json:"roles"`    // Optional role names, defaults to ["user"]
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email"`    // Account email
	Password string `json:"password"` // Plain password
}

// RegisterHandler creates a new account
func RegisterHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		account, err := auth.Register(c.Request.Context(), req.Email, req.Password, req.Roles)
		if err != nil {
			respondError(c, err) // Validation, conflict or internal error
			return
		}
		c.JSON(http.StatusCreated, account) // Return the new account
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		session, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err) // Same body for unknown email and wrong password
			return
		}
		c.JSON(http.StatusOK, session) // Return the token and the user
	}
}
