package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
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

func (c *clientImpl) get(ctx context.Context, fullURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", acceptGeoJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d from %s", ErrRequestFailed, resp.StatusCode, fullURL)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrRequestFailed, err)
	}
	return nil
}

// ZoneForPoint calls GET /points/{lat},{lon} with coordinates rounded to four
// decimal places (the API redirects otherwise) and returns the trailing path
// segment of the forecastZone URN.
func (c *clientImpl) ZoneForPoint(ctx context.Context, lat, lon float64) (string, error) {
	fullURL := fmt.Sprintf("%s/points/%.4f,%.4f", c.cfg.BaseURL, lat, lon)

	var payload pointResponse
	if err := c.get(ctx, fullURL, &payload); err != nil {
		return "", err
	}

	zone := payload.Properties.ForecastZone
	if zone == "" {
		return "", fmt.Errorf("%w: %.4f,%.4f", ErrNoZone, lat, lon)
	}
	if idx := strings.LastIndex(zone, "/"); idx >= 0 {
		zone = zone[idx+1:]
	}
	if zone == "" {
		return "", fmt.Errorf("%w: malformed zone URN %q", ErrNoZone, payload.Properties.ForecastZone)
	}
	return zone, nil
}

// ActiveAlerts calls GET /alerts/active?zone={zoneID}.
func (c *clientImpl) ActiveAlerts(ctx context.Context, zoneID string) ([]Alert, error) {
	params := url.Values{"zone": {zoneID}}
	fullURL := fmt.Sprintf("%s/alerts/active?%s", c.cfg.BaseURL, params.Encode())

	var payload alertsResponse
	if err := c.get(ctx, fullURL, &payload); err != nil {
		return nil, err
	}

	alerts := make([]Alert, 0, len(payload.Features))
	for _, f := range payload.Features {
		alerts = append(alerts, Alert{
			Event:       f.Properties.Event,
			Headline:    f.Properties.Headline,
			Description: f.Properties.Description,
			Severity:    f.Properties.Severity,
			Effective:   f.Properties.Effective,
			Expires:     f.Properties.Expires,
		})
	}
	return alerts, nil
}

func (c *clientImpl) Close() error {
	if c.client != nil {
		c.client.CloseIdleConnections()
	}
	return nil
}
