package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-field-validator/internal/client"
	"github.com/MKhiriev/go-field-validator/internal/config"
	"github.com/MKhiriev/go-field-validator/internal/logger"
	"github.com/MKhiriev/go-field-validator/internal/tui"
	"github.com/MKhiriev/go-field-validator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("formdemo").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("formdemo", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(cfg, tui.New(log), os.Stdout, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init formdemo app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("formdemo run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
