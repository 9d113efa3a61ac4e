package store

import (
	"context"

	"maets/internal/domain"
)

// ConfigStore is a document store for game configurations. Implementations
// must hold at most one document per (user, game), enforced by a unique index.
type ConfigStore interface {
	Get(ctx context.Context, userID, gameID uint) (*domain.GameConfig, error)
	Insert(ctx context.Context, cfg *domain.GameConfig) error
	Update(ctx context.Context, cfg *domain.GameConfig) error
	Delete(ctx context.Context, userID, gameID uint) error
}

var (
	_ ConfigStore = (*SQLConfigStore)(nil)
	_ ConfigStore = (*MongoConfigStore)(nil)
)
