package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/epl-analytics/internal/config"
	"github.com/riskibarqy/epl-analytics/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/epl-analytics/internal/interfaces/httpapi"
	"github.com/riskibarqy/epl-analytics/internal/platform/logging"
	"github.com/riskibarqy/epl-analytics/internal/usecase"
)

// NewHTTPServer builds the player directory and the HTTP server around it.
// An invalid seed fails here, before the server ever listens.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	playerRepo, err := memory.NewPlayerRepository(memory.SeedPlayers())
	if err != nil {
		return nil, fmt.Errorf("build player directory: %w", err)
	}

	playerSvc := usecase.NewPlayerService(playerRepo)
	handler := httpapi.NewHandler(playerSvc, logger)
	router := httpapi.NewRouter(
		handler,
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		cfg.CORSAllowCredentials,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
