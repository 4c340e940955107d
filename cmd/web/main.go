package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/qa-console/internal/client"
	"github.com/MKhiriev/qa-console/internal/config"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("qa-web")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	app, err := client.NewWebApp(ctx, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init web console error")
	}

	log.Info().Str("address", "http://"+cfg.Web.HTTPAddress).Msg("web console is ready")
	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("web console run error")
	}
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
