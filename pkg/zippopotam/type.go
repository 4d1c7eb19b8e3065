package zippopotam

import (
	"net/http"
	"time"

	"frostwatch-srv/pkg/log"
)

// Config holds client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Location is the resolved place for a ZIP code.
type Location struct {
	Latitude  float64
	Longitude float64
	City      string
	State     string
}

type geocoderImpl struct {
	l      log.Logger
	cfg    Config
	client *http.Client
}

// zippopotam.us API response types. Coordinates come back as strings.

type lookupResponse struct {
	PostCode string  `json:"post code"`
	Places   []place `json:"places"`
}

type place struct {
	PlaceName string `json:"place name"`
	State     string `json:"state"`
	StateAbbr string `json:"state abbreviation"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
