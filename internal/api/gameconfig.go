package api

import (
	"errors"   // Empty body detection
	"io"       // io.EOF
	"net/http" // HTTP status codes

	"maets/internal/domain"  // Config patch
	"maets/internal/service" // Config service

	"github.com/gin-gonic/gin" // Gin web framework
)

// configTarget resolves the caller and the game of a /library/:id/config request
func configTarget(c *gin.Context) (userID, gameID uint, ok bool) {
	if userID, ok = currentUser(c); !ok {
		return 0, 0, false
	}
	if gameID, ok = pathID(c, "id"); !ok {
		return 0, 0, false
	}
	return userID, gameID, true
}

// bindPatch reads an optional config body. An empty body is an empty patch.
func bindPatch(c *gin.Context) (domain.GameConfigPatch, bool) {
	var patch domain.GameConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return patch, false
	}
	return patch, true
}

// GetConfigHandler returns the caller's config for a game
func GetConfigHandler(configs *service.ConfigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, gameID, ok := configTarget(c)
		if !ok {
			return
		}
		cfg, err := configs.GetConfig(c.Request.Context(), userID, gameID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// CreateConfigHandler stores the caller's first config for a game
func CreateConfigHandler(configs *service.ConfigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, gameID, ok := configTarget(c)
		if !ok {
			return
		}
		patch, ok := bindPatch(c)
		if !ok {
			return
		}
		cfg, err := configs.CreateConfig(c.Request.Context(), userID, gameID, patch)
		if err != nil {
			respondError(c, err) // Invalid values or config already present
			return
		}
		c.JSON(http.StatusCreated, cfg)
	}
}

// UpdateConfigHandler merges a partial update into the caller's config
func UpdateConfigHandler(configs *service.ConfigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, gameID, ok := configTarget(c)
		if !ok {
			return
		}
		patch, ok := bindPatch(c)
		if !ok {
			return
		}
		cfg, err := configs.UpdateConfig(c.Request.Context(), userID, gameID, patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// DeleteConfigHandler removes the caller's config for a game
func DeleteConfigHandler(configs *service.ConfigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, gameID, ok := configTarget(c)
		if !ok {
			return
		}
		if err := configs.DeleteConfig(c.Request.Context(), userID, gameID); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
