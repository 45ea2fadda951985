package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/epl-analytics/internal/domain/player"
	playermock "github.com/riskibarqy/epl-analytics/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_GetPlayerByName_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	expected := player.Player{Name: "Mohamed Salah", Team: "Liverpool", Position: player.PositionForward, Goals: 0.7}
	playerRepo.
		On("GetByName", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "mohamed salah").
		Return(expected, true, nil).
		Once()

	got, err := service.GetPlayerByName(ctx, "mohamed salah")
	if err != nil {
		t.Fatalf("get player by name: %v", err)
	}
	if got.Name != expected.Name {
		t.Fatalf("unexpected player name: got=%s want=%s", got.Name, expected.Name)
	}
}

func TestPlayerService_GetPlayerByName_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	playerRepo.
		On("GetByName", mock.Anything, "does-not-exist").
		Return(player.Player{}, false, nil).
		Once()

	_, err := service.GetPlayerByName(ctx, "does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_GetPlayerByName_BlankNameIsNotFound(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	playerRepo.
		On("GetByName", mock.Anything, "   ").
		Return(player.Player{}, false, nil).
		Once()

	_, err := service.GetPlayerByName(context.Background(), "   ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_RepositoryErrorsAreWrapped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoErr := errors.New("directory unavailable")
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	playerRepo.On("List", mock.Anything).Return(nil, repoErr).Once()
	playerRepo.On("ListTeams", mock.Anything).Return(nil, repoErr).Once()
	playerRepo.On("ListPositions", mock.Anything).Return(nil, repoErr).Once()

	if _, err := service.ListPlayers(ctx); !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error from ListPlayers, got %v", err)
	}
	if _, err := service.ListTeams(ctx); !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error from ListTeams, got %v", err)
	}
	if _, err := service.ListPositions(ctx); !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error from ListPositions, got %v", err)
	}
}
