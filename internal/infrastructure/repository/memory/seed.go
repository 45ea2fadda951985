package memory

import "github.com/riskibarqy/epl-analytics/internal/domain/player"

// SeedPlayers returns the fixed Premier League sample directory in display order.
func SeedPlayers() []player.Player {
	return []player.Player{
		{
			Name: "Erling Haaland", Team: "Manchester City", Position: player.PositionForward,
			Goals: 0.9, Assists: 0.2, PassingAccuracy: 0.75, Tackles: 0.1,
			Interceptions: 0.1, Dribbles: 0.8, ShotsOnTarget: 0.7,
		},
		{
			Name: "Kevin De Bruyne", Team: "Manchester City", Position: player.PositionMidfielder,
			Goals: 0.3, Assists: 0.8, PassingAccuracy: 0.85, Tackles: 0.3,
			Interceptions: 0.4, Dribbles: 0.7, ShotsOnTarget: 0.5,
		},
		{
			Name: "Mohamed Salah", Team: "Liverpool", Position: player.PositionForward,
			Goals: 0.7, Assists: 0.4, PassingAccuracy: 0.78, Tackles: 0.2,
			Interceptions: 0.2, Dribbles: 0.9, ShotsOnTarget: 0.6,
		},
		{
			Name: "Bukayo Saka", Team: "Arsenal", Position: player.PositionForward,
			Goals: 0.5, Assists: 0.6, PassingAccuracy: 0.82, Tackles: 0.4,
			Interceptions: 0.3, Dribbles: 0.8, ShotsOnTarget: 0.6,
		},
		{
			Name: "Declan Rice", Team: "Arsenal", Position: player.PositionMidfielder,
			Goals: 0.2, Assists: 0.3, PassingAccuracy: 0.88, Tackles: 0.9,
			Interceptions: 0.8, Dribbles: 0.5, ShotsOnTarget: 0.3,
		},
		{
			Name: "Virgil van Dijk", Team: "Liverpool", Position: player.PositionDefender,
			Goals: 0.1, Assists: 0.2, PassingAccuracy: 0.89, Tackles: 0.7,
			Interceptions: 0.8, Dribbles: 0.3, ShotsOnTarget: 0.2,
		},
		{
			Name: "Bruno Fernandes", Team: "Manchester United", Position: player.PositionMidfielder,
			Goals: 0.4, Assists: 0.7, PassingAccuracy: 0.83, Tackles: 0.5,
			Interceptions: 0.6, Dribbles: 0.6, ShotsOnTarget: 0.5,
		},
		{
			Name: "Son Heung-min", Team: "Tottenham", Position: player.PositionForward,
			Goals: 0.6, Assists: 0.5, PassingAccuracy: 0.81, Tackles: 0.3,
			Interceptions: 0.3, Dribbles: 0.8, ShotsOnTarget: 0.7,
		},
	}
}
