package zippopotam

import "time"

const (
	DefaultBaseURL = "https://api.zippopotam.us"
	DefaultTimeout = 10 * time.Second

	countryPath = "us"
)
