// Package ingest resolves configured point sources into capability values.
package ingest

import (
	"fmt"
	"os"

	"github.com/geoset/centroid/internal/config"
	"github.com/geoset/centroid/internal/geo"
	"github.com/geoset/centroid/internal/sources"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Collect resolves one configured source to a slice of capability values.
// Inline data takes priority over a local file, a local file over a URL.
// The returned values carry no trace of the source layout they came from.
func Collect(client *resty.Client, src config.Source) ([]geo.LatLon, error) {
	switch src.Format {
	case config.FormatTrack:
		var pts []sources.TrackPoint
		if src.Inline != nil {
			if err := src.Inline.Decode(&pts); err != nil {
				return nil, fmt.Errorf("source %q: decode inline data: %w", src.Name, err)
			}
		} else {
			data, err := loadBytes(client, src)
			if err != nil {
				return nil, err
			}
			if pts, err = sources.ParseTrack(data); err != nil {
				return nil, fmt.Errorf("source %q: %w", src.Name, err)
			}
		}

		out := make([]geo.LatLon, 0, len(pts))
		for _, p := range pts {
			out = append(out, geo.FromTrack(p))
		}
		return out, nil

	case config.FormatPlain:
		var pts []sources.PlainPoint
		if src.Inline != nil {
			if err := src.Inline.Decode(&pts); err != nil {
				return nil, fmt.Errorf("source %q: decode inline data: %w", src.Name, err)
			}
		} else {
			data, err := loadBytes(client, src)
			if err != nil {
				return nil, err
			}
			if pts, err = sources.ParsePlain(data); err != nil {
				return nil, fmt.Errorf("source %q: %w", src.Name, err)
			}
		}

		out := make([]geo.LatLon, 0, len(pts))
		for _, p := range pts {
			out = append(out, geo.FromPlain(p))
		}
		return out, nil

	case config.FormatTagged:
		var pts []sources.TaggedPoint
		if src.Inline != nil {
			if err := src.Inline.Decode(&pts); err != nil {
				return nil, fmt.Errorf("source %q: decode inline data: %w", src.Name, err)
			}
		} else {
			data, err := loadBytes(client, src)
			if err != nil {
				return nil, err
			}
			if pts, err = sources.ParseTagged(data); err != nil {
				return nil, fmt.Errorf("source %q: %w", src.Name, err)
			}
		}

		out := make([]geo.LatLon, 0, len(pts))
		for _, p := range pts {
			out = append(out, geo.FromTagged(p))
		}
		return out, nil

	default:
		return nil, fmt.Errorf("source %q: unknown format %q", src.Name, src.Format)
	}
}

// CollectAll walks the configured sources, skipping ones that fail to load.
// A failing source is logged and dropped rather than aborting the whole run.
func CollectAll(client *resty.Client, srcs []config.Source) []geo.LatLon {
	var all []geo.LatLon

	for _, src := range srcs {
		pts, err := Collect(client, src)
		if err != nil {
			log.Error().Err(err).Str("source", src.Name).Msg("Failed to collect source")
			continue
		}

		log.Debug().
			Str("source", src.Name).
			Str("format", src.Format).
			Int("points", len(pts)).
			Msg("Source collected")

		all = append(all, pts...)
	}

	return all
}

// loadBytes reads the raw source data from disk or over HTTP.
func loadBytes(client *resty.Client, src config.Source) ([]byte, error) {
	if src.File != "" {
		data, err := os.ReadFile(src.File)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Name, err)
		}
		return data, nil
	}

	if src.URL == "" {
		return nil, fmt.Errorf("source %q: no inline data, file or url configured", src.Name)
	}

	log.Info().
		Str("source", src.Name).
		Str("url", src.URL).
		Msg("Fetching remote source")

	data, err := sources.Fetch(client, src.URL)
	if err != nil {
		return nil, fmt.Errorf("source %q: fetch %s: %w", src.Name, src.URL, err)
	}

	return data, nil
}
