package store

import (
	"context"

	"gorm.io/gorm"

	"maets/internal/domain"
)

// GameStore persists the game catalog.
type GameStore struct {
	db *gorm.DB
}

// NewGameStore returns a GameStore backed by db.
func NewGameStore(db *gorm.DB) *GameStore {
	return &GameStore{db: db}
}

// Create inserts a game. A taken name yields ErrDuplicate.
func (s *GameStore) Create(ctx context.Context, game *domain.Game) error {
	return translate(s.db.WithContext(ctx).Create(game).Error)
}

// FindByID returns the game with the given id.
func (s *GameStore) FindByID(ctx context.Context, id uint) (*domain.Game, error) {
	var game domain.Game
	if err := s.db.WithContext(ctx).First(&game, id).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

// FindByName returns the game with exactly this name.
func (s *GameStore) FindByName(ctx context.Context, name string) (*domain.Game, error) {
	var game domain.Game
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&game).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

// List returns every game ordered by id.
func (s *GameStore) List(ctx context.Context) ([]domain.Game, error) {
	games := []domain.Game{}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// Rename overwrites the name of a game and returns the updated row.
func (s *GameStore) Rename(ctx context.Context, id uint, name string) (*domain.Game, error) {
	var game domain.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&game, id).Error; err != nil {
			return err
		}
		game.Name = name
		return tx.Save(&game).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

// Delete removes a game. Ownership rows go with it through the foreign key cascade.
func (s *GameStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.Game{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
