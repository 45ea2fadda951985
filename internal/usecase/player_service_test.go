package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/epl-analytics/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededPlayerService(t *testing.T) *PlayerService {
	t.Helper()

	repo, err := memory.NewPlayerRepository(memory.SeedPlayers())
	require.NoError(t, err)

	return NewPlayerService(repo)
}

func TestPlayerService_ListPlayers_StableOrder(t *testing.T) {
	service := newSeededPlayerService(t)
	ctx := context.Background()

	first, err := service.ListPlayers(ctx)
	require.NoError(t, err)
	second, err := service.ListPlayers(ctx)
	require.NoError(t, err)

	require.Len(t, first, 8)
	assert.Equal(t, first, second)
}

func TestPlayerService_GetPlayerByName_AnyCasing(t *testing.T) {
	service := newSeededPlayerService(t)
	ctx := context.Background()

	want, err := service.GetPlayerByName(ctx, "Erling Haaland")
	require.NoError(t, err)

	for _, name := range []string{"erling haaland", "ERLING HAALAND", "Erling Haaland"} {
		got, err := service.GetPlayerByName(ctx, name)
		require.NoError(t, err, "name=%q", name)
		assert.Equal(t, want, got)
	}
}

func TestPlayerService_GetPlayerByName_Unknown(t *testing.T) {
	service := newSeededPlayerService(t)

	for _, name := range []string{"does-not-exist", "", "   ", " Erling Haaland "} {
		_, err := service.GetPlayerByName(context.Background(), name)
		require.Error(t, err, "name=%q", name)
		assert.True(t, errors.Is(err, ErrNotFound), "name=%q err=%v", name, err)
	}
}

func TestPlayerService_DistinctValues(t *testing.T) {
	service := newSeededPlayerService(t)
	ctx := context.Background()

	teams, err := service.ListTeams(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Manchester City", "Liverpool", "Arsenal", "Manchester United", "Tottenham"}, teams)

	positions, err := service.ListPositions(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Forward", "Midfielder", "Defender"}, positions)
}
