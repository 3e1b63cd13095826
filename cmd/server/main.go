package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-data-market/internal/adapter"
	"github.com/MKhiriev/go-data-market/internal/config"
	"github.com/MKhiriev/go-data-market/internal/handler"
	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/server"
	"github.com/MKhiriev/go-data-market/internal/service"
	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/internal/workers"
	"github.com/MKhiriev/go-data-market/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("market-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err := migrations.Migrate(storages.DB().DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	pinning := adapter.NewPinningClient(cfg.Pinning, log)
	chain, err := adapter.NewChainReader(cfg.Chain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating chain reader")
	}

	services := service.NewServices(*storages, pinning, chain, *cfg, log)

	background := workers.NewWorkers(
		workers.NewReconciler(storages.EncryptedDatasetRepository, 0, log),
	)
	background.Run()

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
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
