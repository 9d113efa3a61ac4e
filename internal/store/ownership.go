package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"maets/internal/domain"
)

// OwnershipStore persists the user_games join table.
type OwnershipStore struct {
	db *gorm.DB
}

// NewOwnershipStore returns an OwnershipStore backed by db.
func NewOwnershipStore(db *gorm.DB) *OwnershipStore {
	return &OwnershipStore{db: db}
}

// Exists reports whether the user owns the game.
func (s *OwnershipStore) Exists(ctx context.Context, userID, gameID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&domain.Ownership{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert records that the user owns the game. The composite primary key turns
// a second insert for the same pair into ErrDuplicate.
func (s *OwnershipStore) Insert(ctx context.Context, userID, gameID uint) error {
	row := domain.Ownership{UserID: userID, GameID: gameID}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error)
}

// Delete removes the ownership row, or returns ErrNotFound when there is none.
func (s *OwnershipStore) Delete(ctx context.Context, userID, gameID uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.Ownership{}, "user_id = ? AND game_id = ?", userID, gameID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GamesOf returns the games a user owns ordered by game id.
func (s *OwnershipStore) GamesOf(ctx context.Context, userID uint) ([]domain.Game, error) {
	games := []domain.Game{}
	err := s.db.WithContext(ctx).
		Model(&domain.Game{}).
		Joins("JOIN user_games ON user_games.game_id = games.id").
		Where("user_games.user_id = ?", userID).
		Order("games.id asc").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
