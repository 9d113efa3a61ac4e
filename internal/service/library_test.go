package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToLibrary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.register(t, "a@x.com")
	chess := f.game(t, "Chess")

	game, err := f.library.AddToLibrary(ctx, user.ID, chess.ID)
	require.NoError(t, err)
	assert.Equal(t, chess, game)

	_, err = f.library.AddToLibrary(ctx, user.ID, chess.ID)
	requireCode(t, err, CodeConflict)

	_, err = f.library.AddToLibrary(ctx, 9999, chess.ID)
	requireCode(t, err, CodeNotFound)
	_, err = f.library.AddToLibrary(ctx, user.ID, 9999)
	requireCode(t, err, CodeNotFound)
}

func TestConcurrentAddToLibraryKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.register(t, "a@x.com")
	chess := f.game(t, "Chess")

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.library.AddToLibrary(ctx, user.ID, chess.ID)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		requireCode(t, err, CodeConflict)
	}
	assert.Equal(t, 1, succeeded)

	lib, err := f.library.ListUserGames(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, lib.Games, 1)
}

func TestRemoveFromLibrary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.register(t, "a@x.com")
	chess := f.game(t, "Chess")

	requireCode(t, f.library.RemoveFromLibrary(ctx, user.ID, chess.ID), CodeNotFound)

	_, err := f.library.AddToLibrary(ctx, user.ID, chess.ID)
	require.NoError(t, err)
	require.NoError(t, f.library.RemoveFromLibrary(ctx, user.ID, chess.ID))
	requireCode(t, f.library.RemoveFromLibrary(ctx, user.ID, chess.ID), CodeNotFound)

	// Absent again, so the pair can be added back.
	_, err = f.library.AddToLibrary(ctx, user.ID, chess.ID)
	assert.NoError(t, err)

	requireCode(t, f.library.RemoveFromLibrary(ctx, user.ID, 9999), CodeNotFound)
	requireCode(t, f.library.RemoveFromLibrary(ctx, 9999, chess.ID), CodeNotFound)
}

func TestListUserGamesSortedByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.register(t, "a@x.com")
	other := f.register(t, "b@x.com")
	mario := f.game(t, "Mario")
	zelda := f.game(t, "Zelda")
	tetris := f.game(t, "Tetris")

	for _, id := range []uint{tetris.ID, mario.ID, zelda.ID} {
		_, err := f.library.AddToLibrary(ctx, user.ID, id)
		require.NoError(t, err)
	}
	_, err := f.library.AddToLibrary(ctx, other.ID, mario.ID)
	require.NoError(t, err)

	lib, err := f.library.ListUserGames(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, lib.ID)
	assert.Equal(t, "a@x.com", lib.Email)
	require.Len(t, lib.Games, 3)
	assert.Equal(t, []uint{mario.ID, zelda.ID, tetris.ID}, []uint{lib.Games[0].ID, lib.Games[1].ID, lib.Games[2].ID})

	empty, err := f.library.ListUserGames(ctx, f.register(t, "c@x.com").ID)
	require.NoError(t, err)
	assert.Empty(t, empty.Games)

	_, err = f.library.ListUserGames(ctx, 9999)
	requireCode(t, err, CodeNotFound)
}
