package store

import (
	"context"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"maets/internal/domain"
)

// GameConfigRow is the relational rendition of a configuration document.
// The resolution sub-document is kept as a JSON column.
type GameConfigRow struct {
	ID              uint                                  `gorm:"primaryKey"`
	UserID          uint                                  `gorm:"not null;uniqueIndex:idx_game_configs_user_game"`
	GameID          uint                                  `gorm:"not null;uniqueIndex:idx_game_configs_user_game"`
	Resolution      datatypes.JSONType[domain.Resolution] `gorm:"not null"`
	GraphicsQuality string                                `gorm:"size:16;not null"`
	FrameRateLimit  int                                   `gorm:"not null"`
	CreatedAt       time.Time                             `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time                             `gorm:"autoUpdateTime:false"`
}

// TableName keeps the table name stable
func (GameConfigRow) TableName() string {
	return "game_configs"
}

func (r GameConfigRow) toDomain() *domain.GameConfig {
	return &domain.GameConfig{
		ID:              strconv.FormatUint(uint64(r.ID), 10),
		UserID:          r.UserID,
		GameID:          r.GameID,
		Resolution:      r.Resolution.Data(),
		GraphicsQuality: domain.GraphicsQuality(r.GraphicsQuality),
		FrameRateLimit:  r.FrameRateLimit,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// SQLConfigStore keeps configuration documents in the relational database.
// It is used when no document database is configured.
type SQLConfigStore struct {
	db *gorm.DB
}

// NewSQLConfigStore returns a SQLConfigStore backed by db.
func NewSQLConfigStore(db *gorm.DB) *SQLConfigStore {
	return &SQLConfigStore{db: db}
}

// Get returns the configuration for the pair.
func (s *SQLConfigStore) Get(ctx context.Context, userID, gameID uint) (*domain.GameConfig, error) {
	var row GameConfigRow
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return row.toDomain(), nil
}

// Insert stores a new configuration and sets its ID.
func (s *SQLConfigStore) Insert(ctx context.Context, cfg *domain.GameConfig) error {
	row := GameConfigRow{
		UserID:          cfg.UserID,
		GameID:          cfg.GameID,
		Resolution:      datatypes.NewJSONType(cfg.Resolution),
		GraphicsQuality: string(cfg.GraphicsQuality),
		FrameRateLimit:  cfg.FrameRateLimit,
		CreatedAt:       cfg.CreatedAt,
		UpdatedAt:       cfg.UpdatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translate(err)
	}
	cfg.ID = strconv.FormatUint(uint64(row.ID), 10)
	return nil
}

// Update overwrites the mutable fields of the configuration for the pair.
func (s *SQLConfigStore) Update(ctx context.Context, cfg *domain.GameConfig) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row GameConfigRow
		if err := tx.Where("user_id = ? AND game_id = ?", cfg.UserID, cfg.GameID).First(&row).Error; err != nil {
			return translate(err)
		}
		err := tx.Model(&row).Updates(map[string]any{
			"resolution":       datatypes.NewJSONType(cfg.Resolution),
			"graphics_quality": string(cfg.GraphicsQuality),
			"frame_rate_limit": cfg.FrameRateLimit,
			"updated_at":       cfg.UpdatedAt,
		}).Error
		return translate(err)
	})
}

// Delete removes the configuration for the pair.
func (s *SQLConfigStore) Delete(ctx context.Context, userID, gameID uint) error {
	res := s.db.WithContext(ctx).Delete(&GameConfigRow{}, "user_id = ? AND game_id = ?", userID, gameID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
