package db

import (
	"maets/internal/domain" // Importing domain models
	"maets/internal/store"  // Store-owned tables

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // Conflict handling for seeds
)

// Migrate performs automatic migration for the database schema
func Migrate(gdb *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err := gdb.AutoMigrate(
		&domain.User{},
		&domain.Role{},
		&domain.Game{},
		&domain.UserRole{},
		&domain.Ownership{},
		&store.GameConfigRow{},
	)
	if err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}

// SeedRoles inserts the known roles, skipping the ones already present
func SeedRoles(gdb *gorm.DB) error {
	roles := make([]domain.Role, 0, len(domain.KnownRoles))
	for _, name := range domain.KnownRoles {
		roles = append(roles, domain.Role{Name: string(name)})
	}
	err := gdb.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&roles).Error
	if err != nil {
		return err
	}
	logrus.WithField("roles", domain.KnownRoles).Info("Roles seeded.")
	return nil
}
