package main

import (
	"context"
	"fmt"

	"github.com/jovanamartatilova/librareads/internal/config"
	myHTTP "github.com/jovanamartatilova/librareads/internal/handler/http"
	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/mail"
	"github.com/jovanamartatilova/librareads/internal/server"
	"github.com/jovanamartatilova/librareads/internal/service"
	"github.com/jovanamartatilova/librareads/internal/store"
	"github.com/jovanamartatilova/librareads/migrations"
	"github.com/jovanamartatilova/librareads/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("librareads-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// the ldflags-injected build version backs /api/version when no
	// explicit version is configured
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err := migrations.Migrate(storages.DB().DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	mailer, err := mail.NewSMTPMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	services, err := service.NewServices(storages, mailer, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := myHTTP.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
