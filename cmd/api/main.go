package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"frostwatch-srv/config"
	"frostwatch-srv/config/postgre"
	digestUsecase "frostwatch-srv/internal/digest/usecase"
	"frostwatch-srv/internal/httpserver"
	"frostwatch-srv/internal/observability"
	subscriptionPostgres "frostwatch-srv/internal/subscription/repository/postgres"
	subscriptionUsecase "frostwatch-srv/internal/subscription/usecase"
	weatherUsecase "frostwatch-srv/internal/weather/usecase"
	"frostwatch-srv/pkg/discord"
	"frostwatch-srv/pkg/log"
	"frostwatch-srv/pkg/mailer"
	"frostwatch-srv/pkg/nws"
	"frostwatch-srv/pkg/ratelimit"
	"frostwatch-srv/pkg/unsub"
	"frostwatch-srv/pkg/zippopotam"
)

// @Name Frostwatch API
// @description Frost and freeze alert email digests by ZIP code.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if err := subscriptionPostgres.Migrate(postgresDB); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}

	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
	}

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
		return
	}

	unsubMgr := unsub.New(cfg.Unsubscribe.SecretKey, cfg.Unsubscribe.TTL)
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

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

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
		Mode: cfg.Server.Mode,

		SubscriptionUC: subUC,
		DigestUC:       digestUC,

		DBPing: postgre.HealthCheck,

		Discord: discordClient,
		Metrics: prometheus.DefaultGatherer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
