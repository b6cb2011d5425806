package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-deep-thoughts/internal/config"
	"github.com/MKhiriev/go-deep-thoughts/internal/graph"
	"github.com/MKhiriev/go-deep-thoughts/internal/handler"
	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/internal/server"
	"github.com/MKhiriev/go-deep-thoughts/internal/service"
	"github.com/MKhiriev/go-deep-thoughts/internal/store"
)

const startupTimeout = 10 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("deep-thoughts-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// The store must be reachable before the listener opens: a request can
	// never arrive at a server without a working database behind it.
	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storages, err := store.NewStorages(startupCtx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg.Auth, log)

	schema, err := graph.NewSchema(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing graphql schema")
	}

	handlers, err := handler.NewHandlers(services, schema, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
