package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/epl-analytics/internal/domain/player"
)

// PlayerService answers read-only queries over the player directory.
type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

// GetPlayerByName matches name case-insensitively; the first record in
// directory order wins. A blank name is reported as not found.
func (s *PlayerService) GetPlayerByName(ctx context.Context, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerByName")
	defer span.End()

	item, exists, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by name: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, name)
	}

	return item, nil
}

func (s *PlayerService) ListTeams(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListTeams")
	defer span.End()

	teams, err := s.playerRepo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *PlayerService) ListPositions(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPositions")
	defer span.End()

	positions, err := s.playerRepo.ListPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}

	out := make([]string, 0, len(positions))
	for _, p := range positions {
		out = append(out, string(p))
	}

	return out, nil
}
