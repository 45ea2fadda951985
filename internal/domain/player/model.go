package player

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Position represents the categorical on-pitch role of a player.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// Player is one directory record: identity plus normalized performance scores.
// Scores are opaque rates bounded to [0, 1].
type Player struct {
	Name            string   `validate:"required"`
	Team            string   `validate:"required"`
	Position        Position `validate:"required,oneof=Goalkeeper Defender Midfielder Forward"`
	Goals           float64  `validate:"gte=0,lte=1"`
	Assists         float64  `validate:"gte=0,lte=1"`
	PassingAccuracy float64  `validate:"gte=0,lte=1"`
	Tackles         float64  `validate:"gte=0,lte=1"`
	Interceptions   float64  `validate:"gte=0,lte=1"`
	Dribbles        float64  `validate:"gte=0,lte=1"`
	ShotsOnTarget   float64  `validate:"gte=0,lte=1"`
}

var recordValidator = validator.New(validator.WithRequiredStructEnabled())

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("player team is required: player=%s", p.Name)
	}
	if err := recordValidator.Struct(p); err != nil {
		return fmt.Errorf("invalid player %q: %w", p.Name, err)
	}

	return nil
}

// NameKey is the case-insensitive lookup key for a player name. Surrounding
// whitespace is significant.
func NameKey(name string) string {
	return strings.ToLower(name)
}
