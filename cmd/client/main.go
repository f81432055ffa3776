package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bus-pass/internal/client"
	"github.com/MKhiriev/go-bus-pass/internal/config"
	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("bus-pass-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("bus-pass-client", cfg.UI.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
