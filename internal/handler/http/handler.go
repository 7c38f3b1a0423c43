package http

import (
	"github.com/aitbenali/go-office-board/internal/config"
	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/service"
)

type Handler struct {
	services *service.Services

	// frontendOrigin is the single origin allowed to make credentialed
	// cross-origin requests.
	frontendOrigin string

	// devMode enables internal error detail in JSON responses.
	devMode bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		frontendOrigin: cfg.FrontendOrigin,
		devMode:        cfg.DevMode,
		logger:         logger,
	}
}
