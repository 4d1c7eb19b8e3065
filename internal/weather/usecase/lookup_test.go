package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frostwatch-srv/internal/observability"
	pkgLog "frostwatch-srv/pkg/log"
	"frostwatch-srv/pkg/nws"
	"frostwatch-srv/pkg/zippopotam"
)

type fakeGeocoder struct {
	loc zippopotam.Location
	err error
}

func (f *fakeGeocoder) Lookup(_ context.Context, _ string) (zippopotam.Location, error) {
	return f.loc, f.err
}
func (f *fakeGeocoder) Close() error { return nil }

type fakeNWS struct {
	zoneID    string
	zoneErr   error
	alerts    []nws.Alert
	alertsErr error

	gotLat, gotLon float64
	gotZone        string
}

func (f *fakeNWS) ZoneForPoint(_ context.Context, lat, lon float64) (string, error) {
	f.gotLat, f.gotLon = lat, lon
	return f.zoneID, f.zoneErr
}

func (f *fakeNWS) ActiveAlerts(_ context.Context, zoneID string) ([]nws.Alert, error) {
	f.gotZone = zoneID
	return f.alerts, f.alertsErr
}
func (f *fakeNWS) Close() error { return nil }

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelError,
		Mode:     pkgLog.ModeDevelopment,
		Encoding: pkgLog.EncodingConsole,
	})
}

func testMetrics() *observability.Metrics {
	return observability.NewMetrics(prometheus.NewRegistry())
}

func TestLookup_Success(t *testing.T) {
	geo := &fakeGeocoder{loc: zippopotam.Location{
		Latitude:  41.88530123,
		Longitude: -87.62261456,
		City:      "Chicago",
		State:     "IL",
	}}
	weatherAPI := &fakeNWS{
		zoneID: "ILZ014",
		alerts: []nws.Alert{
			{Event: "Freeze Warning", Description: "Lows near 28 degrees.", Severity: "Moderate", Effective: time.Now()},
			{Event: "Dense Fog Advisory", Description: "Visibility under a quarter mile."},
		},
	}

	uc := New(testLogger(), geo, weatherAPI, testMetrics())
	report, err := uc.Lookup(context.Background(), "60601")
	require.NoError(t, err)

	require.NotNil(t, report.Location)
	assert.Equal(t, 41.8853, report.Location.Latitude)
	assert.Equal(t, -87.6226, report.Location.Longitude)
	assert.Equal(t, "Chicago", report.Location.City)

	// Coordinates passed to the points endpoint are the rounded ones.
	assert.Equal(t, 41.8853, weatherAPI.gotLat)
	assert.Equal(t, -87.6226, weatherAPI.gotLon)
	assert.Equal(t, "ILZ014", weatherAPI.gotZone)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "Freeze Warning", report.Alerts[0].Alert.Event)
	assert.Contains(t, report.Alerts[0].Summary, "near 28 degrees")
}

func TestLookup_NoActiveAlerts(t *testing.T) {
	geo := &fakeGeocoder{loc: zippopotam.Location{Latitude: 30.2672, Longitude: -97.7431}}
	weatherAPI := &fakeNWS{zoneID: "TXZ192"}

	uc := New(testLogger(), geo, weatherAPI, testMetrics())
	report, err := uc.Lookup(context.Background(), "78701")
	require.NoError(t, err)

	require.NotNil(t, report.Location)
	assert.Empty(t, report.Alerts)
}

func TestLookup_GeocodeFailureDegradesToEmptyReport(t *testing.T) {
	geo := &fakeGeocoder{err: zippopotam.ErrLookupFailed}
	weatherAPI := &fakeNWS{}

	uc := New(testLogger(), geo, weatherAPI, testMetrics())
	report, err := uc.Lookup(context.Background(), "00000")
	require.NoError(t, err)

	assert.Nil(t, report.Location)
	assert.Empty(t, report.Alerts)
	// The NWS client must not be touched when geocoding fails.
	assert.Zero(t, weatherAPI.gotLat)
	assert.Empty(t, weatherAPI.gotZone)
}

func TestLookup_ZoneFailureDegradesToEmptyReport(t *testing.T) {
	geo := &fakeGeocoder{loc: zippopotam.Location{Latitude: 41.8853, Longitude: -87.6226}}
	weatherAPI := &fakeNWS{zoneErr: nws.ErrNoZone}

	uc := New(testLogger(), geo, weatherAPI, testMetrics())
	report, err := uc.Lookup(context.Background(), "60601")
	require.NoError(t, err)
	assert.Nil(t, report.Location)
}

func TestLookup_AlertsFailureDegradesToEmptyReport(t *testing.T) {
	geo := &fakeGeocoder{loc: zippopotam.Location{Latitude: 41.8853, Longitude: -87.6226}}
	weatherAPI := &fakeNWS{zoneID: "ILZ014", alertsErr: errors.New("503 service unavailable")}

	uc := New(testLogger(), geo, weatherAPI, testMetrics())
	report, err := uc.Lookup(context.Background(), "60601")
	require.NoError(t, err)
	assert.Nil(t, report.Location)
}
