package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"maets/internal/domain"
)

// RoleStore reads roles and the user_roles join table.
type RoleStore struct {
	db *gorm.DB
}

// NewRoleStore returns a RoleStore backed by db.
func NewRoleStore(db *gorm.DB) *RoleStore {
	return &RoleStore{db: db}
}

// FindByNames returns the roles matching names. Unknown names are skipped.
func (s *RoleStore) FindByNames(ctx context.Context, names []string) ([]domain.Role, error) {
	roles := []domain.Role{}
	if len(names) == 0 {
		return roles, nil
	}
	if err := s.db.WithContext(ctx).Where("name IN ?", names).Order("id asc").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// RolesOf returns the roles assigned to a user.
func (s *RoleStore) RolesOf(ctx context.Context, userID uint) ([]domain.Role, error) {
	roles := []domain.Role{}
	err := s.db.WithContext(ctx).
		Model(&domain.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.id asc").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// Assign grants roles to a user. Existing assignments are left alone.
func (s *RoleStore) Assign(ctx context.Context, userID uint, roleIDs ...uint) error {
	if len(roleIDs) == 0 {
		return nil
	}
	rows := make([]domain.UserRole, 0, len(roleIDs))
	for _, id := range roleIDs {
		rows = append(rows, domain.UserRole{UserID: userID, RoleID: id})
	}
	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	return translate(err)
}
