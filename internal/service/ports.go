package service

import (
	"context"

	"maets/internal/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User, roleIDs []uint) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	Delete(ctx context.Context, id uint) error
}

// RoleRepository is the role store.
type RoleRepository interface {
	FindByNames(ctx context.Context, names []string) ([]domain.Role, error)
	RolesOf(ctx context.Context, userID uint) ([]domain.Role, error)
	Assign(ctx context.Context, userID uint, roleIDs ...uint) error
}

// GameRepository is the catalog store.
type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) error
	FindByID(ctx context.Context, id uint) (*domain.Game, error)
	FindByName(ctx context.Context, name string) (*domain.Game, error)
	List(ctx context.Context) ([]domain.Game, error)
	Rename(ctx context.Context, id uint, name string) (*domain.Game, error)
	Delete(ctx context.Context, id uint) error
}

// OwnershipRepository is the user_games join store.
type OwnershipRepository interface {
	Exists(ctx context.Context, userID, gameID uint) (bool, error)
	Insert(ctx context.Context, userID, gameID uint) error
	Delete(ctx context.Context, userID, gameID uint) error
	GamesOf(ctx context.Context, userID uint) ([]domain.Game, error)
}
