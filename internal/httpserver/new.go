package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"frostwatch-srv/internal/digest"
	"frostwatch-srv/internal/subscription"
	"frostwatch-srv/pkg/discord"
	"frostwatch-srv/pkg/log"
)

// HTTPServer wires the HTTP surface. New() only assembles and validates
// dependencies; Run() (in httpserver.go) starts serving.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int
	mode   string

	subUC    subscription.UseCase
	digestUC digest.UseCase

	dbPing  func(ctx context.Context) error
	discord discord.IDiscord
	metrics prometheus.Gatherer
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Host string
	Port int
	Mode string

	SubscriptionUC subscription.UseCase
	DigestUC       digest.UseCase

	// DBPing backs the health endpoint.
	DBPing func(ctx context.Context) error

	Discord discord.IDiscord
	Metrics prometheus.Gatherer
}

// New creates an HTTPServer. No goroutines are started here.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:      gin.New(),
		logger:   logger,
		host:     cfg.Host,
		port:     cfg.Port,
		mode:     cfg.Mode,
		subUC:    cfg.SubscriptionUC,
		digestUC: cfg.DigestUC,
		dbPing:   cfg.DBPing,
		discord:  cfg.Discord,
		metrics:  cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.subUC == nil {
		return errors.New("subscription usecase is required")
	}
	if srv.digestUC == nil {
		return errors.New("digest usecase is required")
	}
	if srv.dbPing == nil {
		return errors.New("database ping is required")
	}
	return nil
}
