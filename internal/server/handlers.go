// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/geoset/centroid/internal/geo"
	"github.com/geoset/centroid/internal/render"
	"github.com/geoset/centroid/internal/sources"

	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 4 << 20

// mixedPayload is the POST body: any combination of the three source layouts.
type mixedPayload struct {
	Track  []sources.TrackPoint  `json:"track,omitempty"`
	Plain  []sources.PlainPoint  `json:"plain,omitempty"`
	Tagged []sources.TaggedPoint `json:"tagged,omitempty"`
}

// HandleSources serves the JSON list of configured sources.
func (s *ServerContext) HandleSources(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Config.Sources)
}

// HandlePoints serves the collected point set as GeoJSON. An empty set yields
// an empty feature collection, not an error.
func (s *ServerContext) HandlePoints(w http.ResponseWriter, r *http.Request) {
	fc := geo.FeatureCollection{Type: "FeatureCollection", Features: []geo.Feature{}}

	if c, err := geo.Centroid(s.Points); err == nil {
		fc = geo.Collection(s.Points, c)
	}

	w.Header().Set("Content-Type", "application/geo+json")
	_ = json.NewEncoder(w).Encode(fc)
}

// HandleCentroid serves the centroid of the collected set on GET, or of the
// posted mixed-shape payload on POST.
func (s *ServerContext) HandleCentroid(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c, err := geo.Centroid(s.Points)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, c)

	case http.MethodPost:
		var payload mixedPayload
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid payload: "+err.Error())
			return
		}

		points := make([]geo.LatLon, 0, len(payload.Track)+len(payload.Plain)+len(payload.Tagged))
		for _, p := range payload.Track {
			points = append(points, geo.FromTrack(p))
		}
		for _, p := range payload.Plain {
			points = append(points, geo.FromPlain(p))
		}
		for _, p := range payload.Tagged {
			points = append(points, geo.FromTagged(p))
		}

		c, err := geo.Centroid(points)
		if err != nil {
			if errors.Is(err, geo.ErrNoPoints) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		log.Debug().Int("points", len(points)).Msg("Computed centroid for posted payload")
		writeJSON(w, c)

	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// HandlePreview renders the collected set as a WebP image.
func (s *ServerContext) HandlePreview(w http.ResponseWriter, r *http.Request) {
	c, err := geo.Centroid(s.Points)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	img := render.Render(s.Points, c, 512)

	w.Header().Set("Content-Type", "image/webp")
	w.Header().Set("Cache-Control", "public, max-age=60")
	if err := render.Encode(w, img); err != nil {
		log.Error().Err(err).Msg("Failed to encode preview")
	}
}

// HandleIndex serves the main HTML application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && strings.Contains(r.URL.Path, ".") {
		http.NotFound(w, r)
		return
	}

	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
