package usecase

import (
	"context"
	"math"

	"frostwatch-srv/internal/model"
	"frostwatch-srv/internal/weather"
)

func (uc *usecase) Lookup(ctx context.Context, zip string) (weather.Report, error) {
	loc, err := uc.geocoder.Lookup(ctx, zip)
	if err != nil {
		uc.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		uc.l.Warnf(ctx, "internal.weather.usecase.Lookup.Geocode: zip %s: %v", zip, err)
		return weather.Report{}, nil
	}
	uc.metrics.GeocodeRequests.WithLabelValues("success").Inc()

	location := model.Location{
		Latitude:  round4(loc.Latitude),
		Longitude: round4(loc.Longitude),
		City:      loc.City,
		State:     loc.State,
	}

	zoneID, err := uc.nws.ZoneForPoint(ctx, location.Latitude, location.Longitude)
	if err != nil {
		uc.metrics.NWSRequests.WithLabelValues("points", "error").Inc()
		uc.l.Warnf(ctx, "internal.weather.usecase.Lookup.ZoneForPoint: zip %s: %v", zip, err)
		return weather.Report{}, nil
	}
	uc.metrics.NWSRequests.WithLabelValues("points", "success").Inc()

	alerts, err := uc.nws.ActiveAlerts(ctx, zoneID)
	if err != nil {
		uc.metrics.NWSRequests.WithLabelValues("alerts", "error").Inc()
		uc.l.Warnf(ctx, "internal.weather.usecase.Lookup.ActiveAlerts: zone %s: %v", zoneID, err)
		return weather.Report{}, nil
	}
	uc.metrics.NWSRequests.WithLabelValues("alerts", "success").Inc()

	matched := make([]weather.MatchedAlert, 0)
	for _, a := range filterFrostAlerts(toModelAlerts(alerts)) {
		matched = append(matched, weather.MatchedAlert{
			Alert:   a,
			Summary: summarize(a),
		})
	}

	return weather.Report{
		Location: &location,
		Alerts:   matched,
	}, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
