package api

import (
	"net/http" // HTTP status codes

	"maets/internal/service" // Library service

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListLibraryHandler returns the caller's games
func ListLibraryHandler(library *service.LibraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return
		}
		lib, err := library.ListUserGames(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Your games list.", "you": lib})
	}
}

// AddToLibraryHandler grants a game to a user (admin only)
func AddToLibraryHandler(library *service.LibraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "userId")
		if !ok {
			return
		}
		gameID, ok := pathID(c, "gameId")
		if !ok {
			return
		}
		game, err := library.AddToLibrary(c.Request.Context(), userID, gameID)
		if err != nil {
			respondError(c, err) // Missing user or game, or already owned
			return
		}
		c.JSON(http.StatusCreated, gin.H{"userId": userID, "game": game})
	}
}

// RemoveFromLibraryHandler drops a game from the caller's library
func RemoveFromLibraryHandler(library *service.LibraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		gameID, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := library.RemoveFromLibrary(c.Request.Context(), userID, gameID); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
