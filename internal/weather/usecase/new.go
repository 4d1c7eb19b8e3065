package usecase

import (
	"frostwatch-srv/internal/observability"
	"frostwatch-srv/internal/weather"
	pkgLog "frostwatch-srv/pkg/log"
	"frostwatch-srv/pkg/nws"
	"frostwatch-srv/pkg/zippopotam"
)

type usecase struct {
	l        pkgLog.Logger
	geocoder zippopotam.IGeocoder
	nws      nws.IClient
	metrics  *observability.Metrics
}

func New(l pkgLog.Logger, geocoder zippopotam.IGeocoder, nwsClient nws.IClient, metrics *observability.Metrics) weather.UseCase {
	return &usecase{
		l:        l,
		geocoder: geocoder,
		nws:      nwsClient,
		metrics:  metrics,
	}
}
