package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/geoset/centroid/internal/config"
	"github.com/geoset/centroid/internal/geo"
	"github.com/geoset/centroid/internal/ingest"
	"github.com/geoset/centroid/internal/logger"
	"github.com/geoset/centroid/internal/render"

	"github.com/go-resty/resty/v2"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string   `short:"c" long:"config"  env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Limit       []string `short:"l" long:"limit"   env:"LIMIT_NAMES" description:"Limit processing to specific source names"`
	Format      string   `short:"f" long:"format"  description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Output      string   `short:"o" long:"out"     description:"Write the summary to a file instead of stdout"`
	GeoJSON     string   `short:"g" long:"geojson" description:"Write the point set with its centroid as GeoJSON to this path"`
	Preview     string   `short:"P" long:"preview" description:"Write a WebP preview image to this path"`
	PreviewSize int      `long:"preview-size" env:"PREVIEW_SIZE" description:"Preview image size in pixels" default:"512"`
}

// Summary is the primary command output.
type Summary struct {
	Count    int          `json:"count" yaml:"count"`
	Centroid geo.Position `json:"centroid" yaml:"centroid"`
}

func main() {
	// .env is optional; go-flags picks the variables up through env tags
	_ = godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Filter sources if limit is set
	srcs := cfg.Sources
	if len(opts.Limit) > 0 {
		srcs = make([]config.Source, 0)
		available := make(map[string]config.Source)
		for _, s := range cfg.Sources {
			available[s.Name] = s
		}

		seen := make(map[string]bool)

		for _, limitName := range opts.Limit {
			if seen[limitName] {
				continue
			}
			seen[limitName] = true

			if s, ok := available[limitName]; ok {
				srcs = append(srcs, s)
			} else {
				log.Error().
					Str("name", limitName).
					Msg("Source specified in --limit not found in configuration")
			}
		}
	}

	client := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(2 * time.Second)

	log.Info().
		Int("sources_total", len(cfg.Sources)).
		Int("sources_queued", len(srcs)).
		Msg("Starting collector")

	points := ingest.CollectAll(client, srcs)

	centroid, err := geo.Centroid(points)
	if err != nil {
		log.Fatal().Err(err).Msg("Nothing to aggregate")
	}

	log.Info().
		Int("points", len(points)).
		Float64("lat", centroid.Lat).
		Float64("lon", centroid.Lon).
		Msg("Centroid computed")

	if opts.GeoJSON != "" {
		if err := saveGeoJSON(opts.GeoJSON, geo.Collection(points, centroid)); err != nil {
			log.Fatal().Err(err).Str("path", opts.GeoJSON).Msg("Failed to write GeoJSON")
		}
	}

	if opts.Preview != "" {
		img := render.Render(points, centroid, opts.PreviewSize)
		if err := render.Save(opts.Preview, img); err != nil {
			log.Fatal().Err(err).Str("path", opts.Preview).Msg("Failed to write preview")
		}
	}

	if err := writeSummary(opts, Summary{Count: len(points), Centroid: centroid}); err != nil {
		log.Fatal().Err(err).Msg("Failed to write summary")
	}
}

// writeSummary marshals the summary and writes it to stdout or a file.
func writeSummary(opts Options, sum Summary) error {
	var data []byte
	var err error

	if opts.Format == "yaml" {
		data, err = yaml.Marshal(sum)
	} else {
		data, err = json.MarshalIndent(sum, "", "  ")
	}
	if err != nil {
		return err
	}

	if opts.Output != "" {
		return os.WriteFile(opts.Output, data, 0644)
	}

	fmt.Println(string(data))
	return nil
}

// saveGeoJSON writes the feature collection to disk.
func saveGeoJSON(path string, fc geo.FeatureCollection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	return json.NewEncoder(f).Encode(fc)
}
