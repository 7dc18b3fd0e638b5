package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/geoset/centroid/internal/config"
	"github.com/geoset/centroid/internal/ingest"
	"github.com/geoset/centroid/internal/logger"
	"github.com/geoset/centroid/internal/server"

	"github.com/go-resty/resty/v2"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	Addr       string `short:"a" long:"addr"   env:"LISTEN_ADDRESS" description:"Address to listen on"       default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"   env:"LISTEN_PORT"    description:"Port to listen on"          default:"8080"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(2 * time.Second)

	points := ingest.CollectAll(client, cfg.Sources)

	srvCtx := server.NewServerContext(cfg, points)

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sources", srvCtx.HandleSources)
	mux.HandleFunc("/api/points", srvCtx.HandlePoints)
	mux.HandleFunc("/api/centroid", srvCtx.HandleCentroid)
	mux.HandleFunc("/preview.webp", srvCtx.HandlePreview)
	mux.HandleFunc("/", srvCtx.HandleIndex)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("points_loaded", len(points)).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
