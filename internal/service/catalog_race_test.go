package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maets/internal/domain"
)

// pausingGames holds reads after they hit the database until resume is closed
type pausingGames struct {
	GameRepository
	loaded chan struct{}
	resume chan struct{}
}

func newPausingGames(inner GameRepository) *pausingGames {
	return &pausingGames{GameRepository: inner, loaded: make(chan struct{}, 1), resume: make(chan struct{})}
}

func (p *pausingGames) FindByID(ctx context.Context, id uint) (*domain.Game, error) {
	game, err := p.GameRepository.FindByID(ctx, id)
	p.loaded <- struct{}{}
	<-p.resume
	return game, err
}

func (p *pausingGames) List(ctx context.Context) ([]domain.Game, error) {
	games, err := p.GameRepository.List(ctx)
	p.loaded <- struct{}{}
	<-p.resume
	return games, err
}

func TestGetGameDoesNotCacheRowDeletedDuringRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	chess := f.game(t, "Chess")

	paused := newPausingGames(f.games)
	reader := NewCatalogService(paused, f.rdb, time.Minute)

	type result struct {
		game *domain.Game
		err  error
	}
	done := make(chan result, 1)
	go func() {
		game, err := reader.GetGame(ctx, chess.ID)
		done <- result{game, err}
	}()

	<-paused.loaded // Row read, cache not written yet
	require.NoError(t, f.catalog.DeleteGame(ctx, chess.ID))
	close(paused.resume)

	res := <-done
	require.NoError(t, res.err) // The in-flight read saw the row before the delete
	assert.Equal(t, "Chess", res.game.Name)
	assert.False(t, f.mr.Exists(gameCacheKey(chess.ID)), "stale row must not be cached")

	_, err := f.catalog.GetGame(ctx, chess.ID)
	requireCode(t, err, CodeNotFound)
}

func TestListGamesDoesNotCacheListRenamedDuringRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	chess := f.game(t, "Chess")

	paused := newPausingGames(f.games)
	reader := NewCatalogService(paused, f.rdb, time.Minute)

	done := make(chan error, 1)
	go func() {
		_, err := reader.ListGames(ctx)
		done <- err
	}()

	<-paused.loaded
	_, err := f.catalog.RenameGame(ctx, chess.ID, "Xiangqi")
	require.NoError(t, err)
	close(paused.resume)
	require.NoError(t, <-done)

	games, err := f.catalog.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Xiangqi", games[0].Name)
}
