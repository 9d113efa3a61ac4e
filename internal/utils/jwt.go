package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken is returned for any token that fails parsing or validation
var ErrInvalidToken = errors.New("invalid token")

// Claims is the session token payload
type Claims struct {
	ID                   uint   `json:"id"`    // User ID
	Email                string `json:"email"` // User email
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateJWT creates an HS256 token for the given user that expires after ttl
func GenerateJWT(userID uint, email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	// Set token claims
	claims := Claims{
		ID:    userID, // Custom claim for user ID
		Email: email,  // Custom claim for email
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a token string. Only HS256 tokens with an expiry are accepted.
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken // Nothing to parse
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), // Reject alg switching
		jwt.WithExpirationRequired(),                                 // Tokens must expire
	)
	// Check for parsing errors
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	return nil, ErrInvalidToken
}
