package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/socialpulse/follower-report-api/infrastructure/integrator/gsheets"
	"github.com/socialpulse/follower-report-api/infrastructure/integrator/gsheets/sheetsclient"
	"github.com/socialpulse/follower-report-api/internal/api"
	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := cfg.Google.Validate(); err != nil {
		// The server still starts so the report endpoint can answer with a
		// proper error body; fetches refuse before any network call.
		logrus.WithError(err).Warn("Google Sheets credentials incomplete")
	}

	sheetsClient := sheetsclient.NewClient(cfg)
	sheetsIntegrator := gsheets.New(cfg, sheetsClient)
	reportService := reporting.NewService(cfg, sheetsIntegrator)

	server, err := api.New(cfg, reportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
