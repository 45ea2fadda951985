package httpapi

import (
	"net/http"

	"github.com/riskibarqy/epl-analytics/internal/platform/logging"
	"github.com/riskibarqy/epl-analytics/internal/usecase"
)

const welcomeMessage = "Welcome to EPL Analytics API"

type messageDTO struct {
	Message string `json:"message"`
}

type Handler struct {
	playerService *usecase.PlayerService
	logger        *logging.Logger
}

func NewHandler(playerService *usecase.PlayerService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService: playerService,
		logger:        logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// Root is the welcome payload; it never depends on prior requests.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Root")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, messageDTO{Message: welcomeMessage})
}
