package main

import (
	"context"
	"fmt"

	"github.com/jiminoh-dev/linkup/internal/adapter"
	"github.com/jiminoh-dev/linkup/internal/config"
	httphandler "github.com/jiminoh-dev/linkup/internal/handler/http"
	"github.com/jiminoh-dev/linkup/internal/logger"
	"github.com/jiminoh-dev/linkup/internal/server"
	"github.com/jiminoh-dev/linkup/internal/service"
	"github.com/jiminoh-dev/linkup/internal/store"
	"github.com/jiminoh-dev/linkup/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("linkup-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	identity := adapter.NewGoogleIdentityAdapter(cfg.Google, log)
	services := service.NewServices(storages, identity, cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
