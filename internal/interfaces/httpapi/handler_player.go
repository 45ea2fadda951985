package httpapi

import (
	"errors"
	"net/http"

	"github.com/riskibarqy/epl-analytics/internal/domain/player"
	"github.com/riskibarqy/epl-analytics/internal/usecase"
)

type playerDTO struct {
	Name            string  `json:"name"`
	Team            string  `json:"team"`
	Position        string  `json:"position"`
	Goals           float64 `json:"goals"`
	Assists         float64 `json:"assists"`
	PassingAccuracy float64 `json:"passing_accuracy"`
	Tackles         float64 `json:"tackles"`
	Interceptions   float64 `json:"interceptions"`
	Dribbles        float64 `json:"dribbles"`
	ShotsOnTarget   float64 `json:"shots_on_target"`
}

type teamsDTO struct {
	Teams []string `json:"teams"`
}

type positionsDTO struct {
	Positions []string `json:"positions"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		Name:            p.Name,
		Team:            p.Team,
		Position:        string(p.Position),
		Goals:           p.Goals,
		Assists:         p.Assists,
		PassingAccuracy: p.PassingAccuracy,
		Tackles:         p.Tackles,
		Interceptions:   p.Interceptions,
		Dribbles:        p.Dribbles,
		ShotsOnTarget:   p.ShotsOnTarget,
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerByName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerByName")
	defer span.End()

	name := r.PathValue("name")
	item, err := h.playerService.GetPlayerByName(ctx, name)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			h.logger.WarnContext(ctx, "get player failed", "name", name, "error", err)
		} else {
			h.logger.ErrorContext(ctx, "get player failed", "name", name, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.playerService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if teams == nil {
		teams = []string{}
	}

	writeJSON(ctx, w, http.StatusOK, teamsDTO{Teams: teams})
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	positions, err := h.playerService.ListPositions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list positions failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if positions == nil {
		positions = []string{}
	}

	writeJSON(ctx, w, http.StatusOK, positionsDTO{Positions: positions})
}
