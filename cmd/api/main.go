package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-insights-api/infrastructure/source"
	"github.com/vfg2006/app-store-insights-api/internal/api"
	"github.com/vfg2006/app-store-insights-api/internal/config"
	"github.com/vfg2006/app-store-insights-api/internal/scheduler"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/cleaning"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/app-store-insights-api/pkg/telemetry"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O dashboard não sobe sem um snapshot válido
	loader := cleaning.NewLoader(source.NewReader(), cfg.Data)
	bundle, err := loader.Load()
	if err != nil {
		entry := logrus.WithError(err).WithFields(logrus.Fields{
			"monthly_stats_path": cfg.Data.MonthlyStatsPath,
			"daily_stats_path":   cfg.Data.DailyStatsPath,
			"country_iso_path":   cfg.Data.CountryISOPath,
		})
		if cleaning.IsLoadError(err) {
			entry.Fatal("Arquivos de origem inválidos, corrija os exports e reinicie")
		}
		entry.Fatal("Erro ao carregar o dataset")
	}

	holder := cleaning.NewHolder(bundle)
	telemetry.ObserveBundle(bundle)

	dashboardService := dashboard.NewService(holder)
	authenticator := authenticating.NewService(cfg.Auth)

	reloadService := scheduler.NewDatasetReloadService(loader, holder, cfg)
	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	}

	server, err := api.New(cfg, holder, dashboardService, authenticator, reloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
