package api

import (
	"net/http" // HTTP status codes

	"maets/internal/service" // Catalog service

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for creating or renaming a game
type GameRequest struct {
	Name string `json:"name"` // Game name
}

// ListGamesHandler returns the whole catalog
func ListGamesHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		games, err := catalog.ListGames(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "All games.", "games": games})
	}
}

// GetGameHandler returns one game
func GetGameHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		game, err := catalog.GetGame(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Game information", "game": game})
	}
}

// CreateGameHandler adds a game to the catalog (admin only)
func CreateGameHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GameRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		game, err := catalog.CreateGame(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, err) // Missing name or duplicate
			return
		}
		c.JSON(http.StatusCreated, game)
	}
}

// RenameGameHandler changes a game's name (admin only)
func RenameGameHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req GameRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		game, err := catalog.RenameGame(c.Request.Context(), id, req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, game)
	}
}

// DeleteGameHandler removes a game and every ownership of it (admin only)
func DeleteGameHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := catalog.DeleteGame(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
