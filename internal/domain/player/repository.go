package player

import "context"

// Repository describes read access to the player directory.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByName(ctx context.Context, name string) (Player, bool, error)
	ListTeams(ctx context.Context) ([]string, error)
	ListPositions(ctx context.Context) ([]Position, error)
}
