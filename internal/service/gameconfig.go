package service

import (
	"context"
	"errors"
	"time"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"maets/internal/domain"
	"maets/internal/store"
)

// ConfigService manages per (user, game) configuration documents.
// A pair is either Absent or Present: create needs Absent, everything else Present.
type ConfigService struct {
	configs store.ConfigStore
	users   UserRepository
	games   GameRepository
	now     func() time.Time
}

// NewConfigService returns a ConfigService backed by configs. users and games
// are consulted so that a config is only created for existing entities.
func NewConfigService(configs store.ConfigStore, users UserRepository, games GameRepository) *ConfigService {
	return &ConfigService{configs: configs, users: users, games: games, now: millisecondNow}
}

// millisecondNow matches the timestamp precision of the document store.
func millisecondNow() time.Time {
	return time.Now().Truncate(time.Millisecond)
}

// GetConfig returns the configuration of the user for the game.
func (s *ConfigService) GetConfig(ctx context.Context, userID, gameID uint) (*domain.GameConfig, error) {
	cfg, err := s.configs.Get(ctx, userID, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errNoConfig(userID, gameID)
	}
	if err != nil {
		return nil, internal("get config", err)
	}
	return cfg, nil
}

// CreateConfig stores a new configuration, filling unset fields with defaults.
// The user and the game must exist; owning the game is not required.
func (s *ConfigService) CreateConfig(ctx context.Context, userID, gameID uint, payload domain.GameConfigPatch) (*domain.GameConfig, error) {
	if _, err := findUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	if _, err := findGame(ctx, s.games, gameID); err != nil {
		return nil, err
	}
	if _, err := s.configs.Get(ctx, userID, gameID); err == nil {
		return nil, errConfigExists(userID, gameID)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, internal("get config", err)
	}

	now := s.now().UTC()
	cfg := &domain.GameConfig{
		UserID:          userID,
		GameID:          gameID,
		GraphicsQuality: domain.DefaultGraphicsQuality,
		FrameRateLimit:  domain.DefaultFrameRateLimit,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	payload.Apply(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.configs.Insert(ctx, cfg); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, errConfigExists(userID, gameID)
		}
		return nil, internal("insert config", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "game_id": gameID}).Info("Game config created")
	return cfg, nil
}

// UpdateConfig merges patch into the existing configuration.
func (s *ConfigService) UpdateConfig(ctx context.Context, userID, gameID uint, patch domain.GameConfigPatch) (*domain.GameConfig, error) {
	cfg, err := s.GetConfig(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}
	patch.Apply(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	cfg.UpdatedAt = s.now().UTC()
	err = s.configs.Update(ctx, cfg)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errNoConfig(userID, gameID)
	}
	if err != nil {
		return nil, internal("update config", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "game_id": gameID}).Info("Game config updated")
	return cfg, nil
}

// DeleteConfig removes the configuration of the user for the game.
func (s *ConfigService) DeleteConfig(ctx context.Context, userID, gameID uint) error {
	err := s.configs.Delete(ctx, userID, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return errNoConfig(userID, gameID)
	}
	if err != nil {
		return internal("delete config", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "game_id": gameID}).Info("Game config deleted")
	return nil
}

func errNoConfig(userID, gameID uint) error {
	return oops.Code(CodeNotFound).With("user_id", userID, "game_id", gameID).Errorf("No config for this game")
}

func errConfigExists(userID, gameID uint) error {
	return oops.Code(CodeConflict).With("user_id", userID, "game_id", gameID).Errorf("User already has a config for this game")
}
