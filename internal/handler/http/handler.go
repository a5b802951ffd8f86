package http

import (
	"strings"

	"github.com/jovanamartatilova/librareads/internal/config"
	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/service"
)

type Handler struct {
	services *service.Services

	// assetBaseURL prefixes stored asset filenames (profile pictures, book
	// covers, PDFs) when building absolute URLs for responses.
	assetBaseURL string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		assetBaseURL: strings.TrimRight(cfg.AssetBaseURL, "/"),
		logger:       logger,
	}
}

// assetURL turns a stored asset filename into an absolute URL. Empty names
// and names that already carry a scheme pass through unchanged.
func (h *Handler) assetURL(name string) string {
	if name == "" || strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return h.assetBaseURL + "/" + strings.TrimLeft(name, "/")
}
