package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"maets/internal/db/dbtest"
	"maets/internal/domain"
	"maets/internal/store"
)

const testSecret = "test-secret"

type fixture struct {
	db      *gorm.DB
	mr      *miniredis.Miniredis
	rdb     *redis.Client
	users   *store.UserStore
	roles   *store.RoleStore
	games   *store.GameStore
	owned   *store.OwnershipStore
	configs *store.SQLConfigStore

	auth    *AuthService
	authz   *Authorizer
	catalog *CatalogService
	library *LibraryService
	cfgs    *ConfigService
	admin   *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := dbtest.New(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	f := &fixture{
		db:      gdb,
		mr:      mr,
		rdb:     rdb,
		users:   store.NewUserStore(gdb),
		roles:   store.NewRoleStore(gdb),
		games:   store.NewGameStore(gdb),
		owned:   store.NewOwnershipStore(gdb),
		configs: store.NewSQLConfigStore(gdb),
	}
	f.auth = NewAuthService(f.users, f.roles, testSecret, 24*time.Hour)
	f.authz = NewAuthorizer(f.roles)
	f.catalog = NewCatalogService(f.games, rdb, time.Minute)
	f.library = NewLibraryService(f.users, f.games, f.owned)
	f.cfgs = NewConfigService(f.configs, f.users, f.games)
	f.admin = NewUserService(f.users, f.roles)
	return f
}

func (f *fixture) register(t *testing.T, email string, roles ...string) *Account {
	t.Helper()
	account, err := f.auth.Register(context.Background(), email, "pw", roles)
	require.NoError(t, err)
	return account
}

func (f *fixture) game(t *testing.T, name string) *domain.Game {
	t.Helper()
	game, err := f.catalog.CreateGame(context.Background(), name)
	require.NoError(t, err)
	return game
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, ErrorCode(err), "unexpected error: %v", err)
}

func ptr[T any](v T) *T {
	return &v
}
