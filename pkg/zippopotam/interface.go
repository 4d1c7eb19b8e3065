package zippopotam

import (
	"context"

	"frostwatch-srv/pkg/log"
)

// IGeocoder resolves a 5-digit U.S. ZIP code to coordinates and place info.
type IGeocoder interface {
	Lookup(ctx context.Context, zip string) (Location, error)
	Close() error
}

// New creates a zippopotam.us client.
func New(l log.Logger, cfg Config) IGeocoder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &geocoderImpl{
		l:      l,
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
	}
}
