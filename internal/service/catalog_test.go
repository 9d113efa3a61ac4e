package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGame(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	game, err := f.catalog.CreateGame(ctx, "Chess")
	require.NoError(t, err)
	assert.NotZero(t, game.ID)
	assert.Equal(t, "Chess", game.Name)

	_, err = f.catalog.CreateGame(ctx, "Chess")
	requireCode(t, err, CodeConflict)

	// Names are case sensitive.
	_, err = f.catalog.CreateGame(ctx, "chess")
	assert.NoError(t, err)

	_, err = f.catalog.CreateGame(ctx, " ")
	requireCode(t, err, CodeValidation)
}

func TestListAndGetGames(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	zelda := f.game(t, "Zelda")
	mario := f.game(t, "Mario")

	games, err := f.catalog.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, zelda.ID, games[0].ID)
	assert.Equal(t, mario.ID, games[1].ID)

	got, err := f.catalog.GetGame(ctx, mario.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mario", got.Name)

	_, err = f.catalog.GetGame(ctx, 9999)
	requireCode(t, err, CodeNotFound)
}

func TestCatalogCacheIsInvalidatedOnWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	chess := f.game(t, "Chess")

	_, err := f.catalog.ListGames(ctx)
	require.NoError(t, err)
	_, err = f.catalog.GetGame(ctx, chess.ID)
	require.NoError(t, err)
	assert.True(t, f.mr.Exists(gamesCacheKey))
	assert.True(t, f.mr.Exists(gameCacheKey(chess.ID)))

	_, err = f.catalog.RenameGame(ctx, chess.ID, "Chess 2")
	require.NoError(t, err)
	assert.False(t, f.mr.Exists(gamesCacheKey))
	assert.False(t, f.mr.Exists(gameCacheKey(chess.ID)))

	got, err := f.catalog.GetGame(ctx, chess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chess 2", got.Name)

	f.game(t, "Go")
	games, err := f.catalog.ListGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 2)
}

func TestRenameGame(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	chess := f.game(t, "Chess")
	f.game(t, "Go")

	renamed, err := f.catalog.RenameGame(ctx, chess.ID, "Shogi")
	require.NoError(t, err)
	assert.Equal(t, chess.ID, renamed.ID)
	assert.Equal(t, "Shogi", renamed.Name)

	_, err = f.catalog.RenameGame(ctx, 9999, "Nope")
	requireCode(t, err, CodeNotFound)

	_, err = f.catalog.RenameGame(ctx, chess.ID, "Go")
	requireCode(t, err, CodeConflict)

	_, err = f.catalog.RenameGame(ctx, chess.ID, "")
	requireCode(t, err, CodeValidation)
}

func TestDeleteGameCascadesOwnershipOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.register(t, "a@x.com")
	chess := f.game(t, "Chess")

	_, err := f.library.AddToLibrary(ctx, user.ID, chess.ID)
	require.NoError(t, err)
	_, err = f.cfgs.CreateConfig(ctx, user.ID, chess.ID, defaultPatch())
	require.NoError(t, err)

	require.NoError(t, f.catalog.DeleteGame(ctx, chess.ID))

	owned, err := f.owned.Exists(ctx, user.ID, chess.ID)
	require.NoError(t, err)
	assert.False(t, owned)

	// Config documents live in the document store and are not cascaded.
	_, err = f.cfgs.GetConfig(ctx, user.ID, chess.ID)
	assert.NoError(t, err)

	requireCode(t, f.catalog.DeleteGame(ctx, chess.ID), CodeNotFound)
}
