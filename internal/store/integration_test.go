//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"gorm.io/gorm"

	"maets/internal/db"
	"maets/internal/domain"
	"maets/internal/store"
)

func startMySQL(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	container, err := mysql.Run(ctx, "mysql:8.4",
		mysql.WithDatabase("maets"),
		mysql.WithUsername("maets"),
		mysql.WithPassword("maets"),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "parseTime=true")
	require.NoError(t, err)
	gdb, err := db.OpenMySQL(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	require.NoError(t, db.Migrate(gdb))
	require.NoError(t, db.SeedRoles(gdb))
	return gdb
}

func TestMySQLConstraints(t *testing.T) {
	ctx := context.Background()
	gdb := startMySQL(t)
	users := store.NewUserStore(gdb)
	games := store.NewGameStore(gdb)
	owned := store.NewOwnershipStore(gdb)

	user := domain.User{Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, &user, nil))
	assert.ErrorIs(t, users.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "hash"}, nil), store.ErrDuplicate)

	chess := domain.Game{Name: "Chess"}
	require.NoError(t, games.Create(ctx, &chess))
	require.NoError(t, owned.Insert(ctx, user.ID, chess.ID))
	assert.ErrorIs(t, owned.Insert(ctx, user.ID, chess.ID), store.ErrDuplicate)

	require.NoError(t, games.Delete(ctx, chess.ID))
	ok, err := owned.Exists(ctx, user.ID, chess.ID)
	require.NoError(t, err)
	assert.False(t, ok, "ownership must cascade with the game")
}

func TestMongoConfigStore(t *testing.T) {
	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	client, err := db.OpenMongo(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	configs := store.NewMongoConfigStore(client.Database("maets_test"))
	require.NoError(t, configs.EnsureIndexes(ctx))

	now := time.Now().UTC().Truncate(time.Millisecond)
	cfg := &domain.GameConfig{
		UserID:          1,
		GameID:          2,
		Resolution:      domain.Resolution{Width: 1920, Height: 1080},
		GraphicsQuality: domain.QualityHigh,
		FrameRateLimit:  60,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, configs.Insert(ctx, cfg))
	assert.Len(t, cfg.ID, 24)

	dup := *cfg
	assert.ErrorIs(t, configs.Insert(ctx, &dup), store.ErrDuplicate)

	got, err := configs.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, got.ID)
	assert.Equal(t, domain.QualityHigh, got.GraphicsQuality)

	got.FrameRateLimit = 30
	require.NoError(t, configs.Update(ctx, got))
	got, err = configs.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 30, got.FrameRateLimit)

	missing := *got
	missing.GameID = 3
	assert.ErrorIs(t, configs.Update(ctx, &missing), store.ErrNotFound)

	require.NoError(t, configs.Delete(ctx, 1, 2))
	assert.ErrorIs(t, configs.Delete(ctx, 1, 2), store.ErrNotFound)
	_, err = configs.Get(ctx, 1, 2)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
