package memory

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/epl-analytics/internal/domain/player"
)

// PlayerRepository is the read-only player directory. It is fully built by
// NewPlayerRepository and never written afterwards, so reads need no locking.
type PlayerRepository struct {
	players     []player.Player
	indexByName map[string]int
	teams       []string
	positions   []player.Position
}

func NewPlayerRepository(players []player.Player) (*PlayerRepository, error) {
	repo := &PlayerRepository{
		players:     make([]player.Player, 0, len(players)),
		indexByName: make(map[string]int, len(players)),
	}

	seenTeams := make(map[string]struct{})
	seenPositions := make(map[player.Position]struct{})
	for i, p := range players {
		if err := p.Validate(); err != nil {
			return nil, crerr.Wrapf(err, "player at index %d", i)
		}

		key := player.NameKey(p.Name)
		if prev, ok := repo.indexByName[key]; ok {
			return nil, crerr.Newf("duplicate player name %q at index %d (first seen at index %d)", p.Name, i, prev)
		}
		repo.indexByName[key] = len(repo.players)
		repo.players = append(repo.players, p)

		if _, ok := seenTeams[p.Team]; !ok {
			seenTeams[p.Team] = struct{}{}
			repo.teams = append(repo.teams, p.Team)
		}
		if _, ok := seenPositions[p.Position]; !ok {
			seenPositions[p.Position] = struct{}{}
			repo.positions = append(repo.positions, p.Position)
		}
	}

	return repo, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name string) (player.Player, bool, error) {
	idx, ok := r.indexByName[player.NameKey(name)]
	if !ok {
		return player.Player{}, false, nil
	}

	return r.players[idx], true, nil
}

func (r *PlayerRepository) ListTeams(_ context.Context) ([]string, error) {
	out := make([]string, 0, len(r.teams))
	out = append(out, r.teams...)

	return out, nil
}

func (r *PlayerRepository) ListPositions(_ context.Context) ([]player.Position, error) {
	out := make([]player.Position, 0, len(r.positions))
	out = append(out, r.positions...)

	return out, nil
}
