package server

import (
	"github.com/geoset/centroid/assets"
	"github.com/geoset/centroid/internal/config"
	"github.com/geoset/centroid/internal/geo"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	Points    []geo.LatLon
	IndexHTML []byte
}

// NewServerContext initializes the context with the collected point set.
// The set is read-only for the lifetime of the server; POST requests compute
// over their own payloads and never touch it.
func NewServerContext(cfg *config.Config, points []geo.LatLon) *ServerContext {
	log.Info().
		Int("sources", len(cfg.Sources)).
		Int("points", len(points)).
		Msg("Initializing server context")

	return &ServerContext{
		Config:    cfg,
		Points:    points,
		IndexHTML: assets.Index,
	}
}
