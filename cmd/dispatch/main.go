package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"frostwatch-srv/config"
	"frostwatch-srv/config/postgre"
	digestUsecase "frostwatch-srv/internal/digest/usecase"
	"frostwatch-srv/internal/observability"
	subscriptionPostgres "frostwatch-srv/internal/subscription/repository/postgres"
	subscriptionUsecase "frostwatch-srv/internal/subscription/usecase"
	weatherUsecase "frostwatch-srv/internal/weather/usecase"
	"frostwatch-srv/pkg/log"
	"frostwatch-srv/pkg/mailer"
	"frostwatch-srv/pkg/nws"
	"frostwatch-srv/pkg/ratelimit"
	"frostwatch-srv/pkg/unsub"
	"frostwatch-srv/pkg/zippopotam"
)

// Dispatch runs one digest batch and exits. An external scheduler (cron, a
// systemd timer, a serverless trigger) owns the wall-clock schedule.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		os.Exit(1)
	}
	defer postgre.Disconnect(ctx, postgresDB)

	geocoder := zippopotam.New(logger, zippopotam.Config{
		BaseURL: cfg.Geocoder.BaseURL,
		Timeout: cfg.Geocoder.Timeout,
	})
	nwsClient := nws.New(logger, nws.Config{
		BaseURL:   cfg.Weather.BaseURL,
		UserAgent: cfg.Weather.UserAgent,
		Timeout:   cfg.Weather.Timeout,
	})
	mailClient, err := mailer.New(logger, mailer.Config{
		APIKey:  cfg.Mailer.APIKey,
		BaseURL: cfg.Mailer.BaseURL,
		Timeout: cfg.Mailer.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize mailer: ", err)
		os.Exit(1)
	}

	unsubMgr := unsub.New(cfg.Unsubscribe.SecretKey, cfg.Unsubscribe.TTL)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	subRepo := subscriptionPostgres.New(logger, postgresDB)
	subUC := subscriptionUsecase.New(logger, subRepo, unsubMgr)
	weatherUC := weatherUsecase.New(logger, geocoder, nwsClient, metrics)
	digestUC := digestUsecase.New(
		logger,
		digestUsecase.Config{
			FromEmail:     cfg.Mailer.FromEmail,
			FromName:      cfg.Mailer.FromName,
			PublicBaseURL: cfg.Digest.PublicBaseURL,
		},
		subUC,
		weatherUC,
		mailClient,
		ratelimit.NewFixedInterval(cfg.Digest.SendInterval, nil),
		unsubMgr,
		metrics,
		nil,
	)

	out, err := digestUC.Run(ctx)
	if err != nil {
		logger.Errorf(ctx, "Digest run failed: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Digest run finished: total %d, success %d, failed %d",
		out.Total, out.Success, out.Failed)
}
