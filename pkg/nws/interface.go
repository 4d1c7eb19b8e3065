package nws

import (
	"context"

	"frostwatch-srv/pkg/log"
)

// IClient talks to the National Weather Service API.
type IClient interface {
	// ZoneForPoint resolves the forecast-zone identifier for a coordinate pair.
	ZoneForPoint(ctx context.Context, lat, lon float64) (string, error)
	// ActiveAlerts fetches all currently active alerts for a forecast zone.
	ActiveAlerts(ctx context.Context, zoneID string) ([]Alert, error)
	Close() error
}

// New creates an NWS API client. The user agent is mandatory: api.weather.gov
// rejects requests without a descriptive User-Agent header.
func New(l log.Logger, cfg Config) IClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &clientImpl{
		l:      l,
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
	}
}
