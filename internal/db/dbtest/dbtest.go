// Package dbtest provides migrated in-memory databases for tests.
package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"maets/internal/db"
)

// New returns a fresh in-memory SQLite database with the schema migrated and
// the roles seeded. Each call gets its own database.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	gdb, err := db.OpenSQLite(dsn)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // One connection keeps the shared in-memory database alive and serialized
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	require.NoError(t, db.SeedRoles(gdb))
	return gdb
}
