package zippopotam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgLog "frostwatch-srv/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelError,
		Mode:     pkgLog.ModeDevelopment,
		Encoding: pkgLog.EncodingConsole,
	})
}

func TestLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/us/60601", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"post code": "60601",
			"places": [{
				"place name": "Chicago",
				"state": "Illinois",
				"state abbreviation": "IL",
				"latitude": "41.8858",
				"longitude": "-87.6229"
			}]
		}`))
	}))
	defer srv.Close()

	g := New(testLogger(), Config{BaseURL: srv.URL})
	loc, err := g.Lookup(context.Background(), "60601")
	require.NoError(t, err)

	assert.Equal(t, 41.8858, loc.Latitude)
	assert.Equal(t, -87.6229, loc.Longitude)
	assert.Equal(t, "Chicago", loc.City)
	assert.Equal(t, "IL", loc.State)
}

func TestLookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := New(testLogger(), Config{BaseURL: srv.URL})
	_, err := g.Lookup(context.Background(), "00000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestLookup_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	g := New(testLogger(), Config{BaseURL: srv.URL})
	_, err := g.Lookup(context.Background(), "60601")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestLookup_NoPlaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"post code": "60601", "places": []}`))
	}))
	defer srv.Close()

	g := New(testLogger(), Config{BaseURL: srv.URL})
	_, err := g.Lookup(context.Background(), "60601")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestLookup_BadCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"places": [{"place name": "Chicago", "latitude": "north", "longitude": "-87.6"}]}`))
	}))
	defer srv.Close()

	g := New(testLogger(), Config{BaseURL: srv.URL})
	_, err := g.Lookup(context.Background(), "60601")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestLookup_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	g := New(testLogger(), Config{BaseURL: srv.URL})
	_, err := g.Lookup(context.Background(), "60601")
	assert.ErrorIs(t, err, ErrLookupFailed)
}
