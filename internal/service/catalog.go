package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"maets/internal/domain"
	"maets/internal/store"
	"maets/internal/utils"
)

const (
	gamesCacheKey = "games:all"
	catalogGenKey = "games:gen" // Bumped on every catalog write
)

func gameCacheKey(id uint) string {
	return "games:id:" + strconv.FormatUint(uint64(id), 10)
}

// CatalogService manages the game catalog. Reads go through an optional
// redis cache that every write invalidates.
type CatalogService struct {
	games GameRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCatalogService returns a CatalogService. rdb may be nil to disable caching.
func NewCatalogService(games GameRepository, rdb *redis.Client, ttl time.Duration) *CatalogService {
	return &CatalogService{games: games, rdb: rdb, ttl: ttl}
}

// ListGames returns every game ordered by id.
func (s *CatalogService) ListGames(ctx context.Context) ([]domain.Game, error) {
	games, err := utils.LoadCache(ctx, s.rdb, catalogGenKey, gamesCacheKey, s.ttl, func() ([]domain.Game, error) {
		return s.games.List(ctx)
	})
	if err != nil {
		return nil, internal("list games", err)
	}
	return games, nil
}

// GetGame returns the game with the given id.
func (s *CatalogService) GetGame(ctx context.Context, id uint) (*domain.Game, error) {
	game, err := utils.LoadCache(ctx, s.rdb, catalogGenKey, gameCacheKey(id), s.ttl, func() (*domain.Game, error) {
		return s.games.FindByID(ctx, id)
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, oops.Code(CodeNotFound).With("game_id", id).Errorf("Not found")
	}
	if err != nil {
		return nil, internal("find game", err)
	}
	return game, nil
}

// CreateGame adds a game. Names are unique and compared exactly.
func (s *CatalogService) CreateGame(ctx context.Context, name string) (*domain.Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, oops.Code(CodeValidation).Errorf("name required")
	}
	if _, err := s.games.FindByName(ctx, name); err == nil {
		return nil, errGameExists(name)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, internal("find game by name", err)
	}

	game := domain.Game{Name: name}
	if err := s.games.Create(ctx, &game); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, errGameExists(name)
		}
		return nil, internal("create game", err)
	}
	s.invalidate(ctx)
	logrus.WithFields(logrus.Fields{"game_id": game.ID, "name": game.Name}).Info("Game created")
	return &game, nil
}

// RenameGame overwrites the name of a game.
func (s *CatalogService) RenameGame(ctx context.Context, id uint, name string) (*domain.Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, oops.Code(CodeValidation).Errorf("name required")
	}
	game, err := s.games.Rename(ctx, id, name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, oops.Code(CodeNotFound).With("game_id", id).Errorf("Not found")
	case errors.Is(err, store.ErrDuplicate):
		return nil, errGameExists(name)
	case err != nil:
		return nil, internal("rename game", err)
	}
	s.invalidate(ctx, id)
	logrus.WithFields(logrus.Fields{"game_id": id, "name": name}).Info("Game renamed")
	return game, nil
}

// DeleteGame removes a game and, through the foreign key, every ownership of it.
// Configuration documents for the game are kept.
func (s *CatalogService) DeleteGame(ctx context.Context, id uint) error {
	err := s.games.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return oops.Code(CodeNotFound).With("game_id", id).Errorf("Not found")
	}
	if err != nil {
		return internal("delete game", err)
	}
	s.invalidate(ctx, id)
	logrus.WithField("game_id", id).Info("Game deleted")
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, ids ...uint) {
	keys := []string{gamesCacheKey}
	for _, id := range ids {
		keys = append(keys, gameCacheKey(id))
	}
	if err := utils.BumpCache(ctx, s.rdb, catalogGenKey, keys...); err != nil {
		logrus.WithError(err).Warn("Catalog cache invalidation failed")
	}
}

func errGameExists(name string) error {
	return oops.Code(CodeConflict).With("name", name).Errorf("Game already exists")
}
