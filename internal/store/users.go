package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"maets/internal/domain"
)

// UserStore persists user identities and their role assignments.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore returns a UserStore backed by db.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts the user and its role assignments in one transaction.
// A taken email yields ErrDuplicate.
func (s *UserStore) Create(ctx context.Context, user *domain.User, roleIDs []uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if len(roleIDs) == 0 {
			return nil
		}
		rows := make([]domain.UserRole, 0, len(roleIDs))
		for _, id := range roleIDs {
			rows = append(rows, domain.UserRole{UserID: user.ID, RoleID: id})
		}
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
	return translate(err)
}

// FindByEmail returns the user registered with email.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByID returns the user with the given id.
func (s *UserStore) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// List returns a page of users ordered by id and the total user count.
func (s *UserStore) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := s.db.WithContext(ctx).Order("id asc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Delete removes the user. Role assignments and ownerships go with it through
// the foreign key cascade.
func (s *UserStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.User{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
