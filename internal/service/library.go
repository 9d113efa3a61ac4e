package service

import (
	"context"
	"errors"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"maets/internal/domain"
	"maets/internal/store"
)

// Library is a user together with the games they own.
type Library struct {
	ID    uint          `json:"id"`
	Email string        `json:"email"`
	Games []domain.Game `json:"games"`
}

// LibraryService manages which users own which games.
type LibraryService struct {
	users UserRepository
	games GameRepository
	owned OwnershipRepository
}

// NewLibraryService returns a LibraryService.
func NewLibraryService(users UserRepository, games GameRepository, owned OwnershipRepository) *LibraryService {
	return &LibraryService{users: users, games: games, owned: owned}
}

// ListUserGames returns the user's library ordered by game id.
func (s *LibraryService) ListUserGames(ctx context.Context, userID uint) (*Library, error) {
	user, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	games, err := s.owned.GamesOf(ctx, userID)
	if err != nil {
		return nil, internal("list owned games", err)
	}
	return &Library{ID: user.ID, Email: user.Email, Games: games}, nil
}

// AddToLibrary records that the user owns the game.
func (s *LibraryService) AddToLibrary(ctx context.Context, userID, gameID uint) (*domain.Game, error) {
	if _, err := findUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	game, err := findGame(ctx, s.games, gameID)
	if err != nil {
		return nil, err
	}
	owned, err := s.owned.Exists(ctx, userID, gameID)
	if err != nil {
		return nil, internal("check ownership", err)
	}
	if owned {
		return nil, errAlreadyOwned(userID, gameID)
	}
	// The composite key settles concurrent inserts that both passed the check above.
	err = s.owned.Insert(ctx, userID, gameID)
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return nil, errAlreadyOwned(userID, gameID)
	case errors.Is(err, store.ErrReference):
		return nil, oops.Code(CodeNotFound).With("user_id", userID, "game_id", gameID).Errorf("User or Game Not found")
	case err != nil:
		return nil, internal("insert ownership", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "game_id": gameID}).Info("Game added to library")
	return game, nil
}

// RemoveFromLibrary deletes the ownership of the game by the user.
// The user's configuration for the game is kept.
func (s *LibraryService) RemoveFromLibrary(ctx context.Context, userID, gameID uint) error {
	if _, err := findUser(ctx, s.users, userID); err != nil {
		return err
	}
	if _, err := findGame(ctx, s.games, gameID); err != nil {
		return err
	}
	err := s.owned.Delete(ctx, userID, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return oops.Code(CodeNotFound).With("user_id", userID, "game_id", gameID).Errorf("User does not own this game.")
	}
	if err != nil {
		return internal("delete ownership", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "game_id": gameID}).Info("Game removed from library")
	return nil
}

func errAlreadyOwned(userID, gameID uint) error {
	return oops.Code(CodeConflict).With("user_id", userID, "game_id", gameID).Errorf("User already owns this game")
}
