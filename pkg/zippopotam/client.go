package zippopotam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// Lookup resolves a ZIP code via GET {base}/us/{zip}.
func (g *geocoderImpl) Lookup(ctx context.Context, zip string) (Location, error) {
	url := fmt.Sprintf("%s/%s/%s", g.cfg.BaseURL, countryPath, zip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Location{}, fmt.Errorf("%w: create request: %v", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("%w: status %d for zip %s", ErrLookupFailed, resp.StatusCode, zip)
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Location{}, fmt.Errorf("%w: decode response: %v", ErrLookupFailed, err)
	}
	if len(payload.Places) == 0 {
		return Location{}, fmt.Errorf("%w: no places for zip %s", ErrLookupFailed, zip)
	}

	p := payload.Places[0]
	lat, err := strconv.ParseFloat(p.Latitude, 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: bad latitude %q", ErrLookupFailed, p.Latitude)
	}
	lon, err := strconv.ParseFloat(p.Longitude, 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: bad longitude %q", ErrLookupFailed, p.Longitude)
	}

	return Location{
		Latitude:  lat,
		Longitude: lon,
		City:      p.PlaceName,
		State:     p.StateAbbr,
	}, nil
}

func (g *geocoderImpl) Close() error {
	if g.client != nil {
		g.client.CloseIdleConnections()
	}
	return nil
}
