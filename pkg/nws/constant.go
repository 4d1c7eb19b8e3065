package nws

import "time"

const (
	DefaultBaseURL   = "https://api.weather.gov"
	DefaultUserAgent = "frostwatch-srv (frost alert digest; contact: ops@frostwatch.app)"
	DefaultTimeout   = 15 * time.Second

	acceptGeoJSON = "application/geo+json"
)
