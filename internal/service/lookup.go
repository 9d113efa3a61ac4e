package service

import (
	"context"
	"errors"

	"github.com/samber/oops"

	"maets/internal/domain"
	"maets/internal/store"
)

// findUser loads a user, reporting a missing one as NOT_FOUND.
func findUser(ctx context.Context, users UserRepository, id uint) (*domain.User, error) {
	user, err := users.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, oops.Code(CodeNotFound).With("user_id", id).Errorf("User not found")
	}
	if err != nil {
		return nil, internal("find user", err)
	}
	return user, nil
}

// findGame loads a game, reporting a missing one as NOT_FOUND.
func findGame(ctx context.Context, games GameRepository, id uint) (*domain.Game, error) {
	game, err := games.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, oops.Code(CodeNotFound).With("game_id", id).Errorf("Game not found")
	}
	if err != nil {
		return nil, internal("find game", err)
	}
	return game, nil
}
