package nws

import (
	"net/http"
	"time"

	"frostwatch-srv/pkg/log"
)

// Config holds client settings.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Alert is one active alert record, reduced to the fields this service reads.
type Alert struct {
	Event       string
	Headline    string
	Description string
	Severity    string
	Effective   time.Time
	Expires     *time.Time
}

type clientImpl struct {
	l      log.Logger
	cfg    Config
	client *http.Client
}

// api.weather.gov response types (GeoJSON envelopes).

type pointResponse struct {
	Properties pointProperties `json:"properties"`
}

type pointProperties struct {
	ForecastZone string `json:"forecastZone"`
}

type alertsResponse struct {
	Features []alertFeature `json:"features"`
}

type alertFeature struct {
	Properties alertProperties `json:"properties"`
}

type alertProperties struct {
	Event       string     `json:"event"`
	Headline    string     `json:"headline"`
	Description string     `json:"description"`
	Severity    string     `json:"severity"`
	Effective   time.Time  `json:"effective"`
	Expires     *time.Time `json:"expires"`
}
