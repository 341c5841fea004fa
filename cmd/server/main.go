package main

import (
	"fmt"

	"github.com/MKhiriev/go-link-txt/internal/adapter"
	"github.com/MKhiriev/go-link-txt/internal/config"
	"github.com/MKhiriev/go-link-txt/internal/handler"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/metrics"
	"github.com/MKhiriev/go-link-txt/internal/server"
	"github.com/MKhiriev/go-link-txt/internal/service"
	"github.com/MKhiriev/go-link-txt/internal/utils"
	"github.com/MKhiriev/go-link-txt/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("link-txt-server", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("link-txt-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	m := metrics.New()

	api, err := adapter.NewHTTPAssetAPI(cfg.Adapter, utils.NewUUIDGenerator(), m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating platform adapter")
	}

	services, err := service.NewServices(api, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
