package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-server-settings/httpserver"
	"github.com/MKhiriev/go-server-settings/logging"
	"github.com/MKhiriev/go-server-settings/settings"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// envPrefix is the prefix for environment overrides, e.g. APPLICATION__HOSTS
// or APPLICATION__WORKERS.
const envPrefix = "APPLICATION__"

func main() {
	printBuildInfo()

	var configPath string
	var writeDefault bool
	flag.StringVar(&configPath, "c", "Server.toml", "TOML settings file path")
	flag.StringVar(&configPath, "config", "Server.toml", "TOML settings file path (alias)")
	flag.BoolVar(&writeDefault, "init", false, "write the default settings template and exit")
	flag.Parse()

	if writeDefault {
		if err := settings.WriteDefault(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "init: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote default settings to %s\n", configPath)
		return
	}

	s, err := settings.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading settings: %v\n", err)
		os.Exit(1)
	}
	if err := s.OverrideFromEnv(envPrefix); err != nil {
		fmt.Fprintf(os.Stderr, "error applying environment overrides: %v\n", err)
		os.Exit(1)
	}

	log := logging.Init(s, "server")
	log.Logger = log.With().Str("instance", uuid.NewString()).Logger()
	log.Debug().Any("settings", s).Msg("settings resolved")

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	if s.EnableCompression {
		router.Use(middleware.Compress(5))
	}
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, "%s (%s, %s)", buildVersion, buildCommit, buildDate)
	})

	builder := httpserver.NewBuilder(router, log)
	s.Apply(builder)

	if err := builder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
