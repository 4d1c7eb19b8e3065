package mailer

import (
	"context"
	"encoding/json"
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

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(testLogger(), Config{})
	assert.Error(t, err)
}

func TestSend_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Personalizations, 1)
		assert.Equal(t, "a@example.com", body.Personalizations[0].To[0].Email)
		assert.Equal(t, "alerts@frostwatch.example", body.From.Email)
		assert.Equal(t, "Frostwatch", body.From.Name)
		assert.Equal(t, "Frost alert for ZIP 60601", body.Subject)
		require.Len(t, body.Content, 1)
		assert.Equal(t, "text/html", body.Content[0].Type)
		assert.Contains(t, body.Content[0].Value, "<html>")

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m, err := New(testLogger(), Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	err = m.Send(context.Background(), SendInput{
		ToEmail:   "a@example.com",
		FromEmail: "alerts@frostwatch.example",
		FromName:  "Frostwatch",
		Subject:   "Frost alert for ZIP 60601",
		HTML:      "<html><body>cold</body></html>",
	})
	assert.NoError(t, err)
}

func TestSend_RejectedByProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"invalid api key"}]}`))
	}))
	defer srv.Close()

	m, err := New(testLogger(), Config{APIKey: "bad-key", BaseURL: srv.URL})
	require.NoError(t, err)

	err = m.Send(context.Background(), SendInput{ToEmail: "a@example.com"})
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestSend_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	m, err := New(testLogger(), Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	err = m.Send(context.Background(), SendInput{ToEmail: "a@example.com"})
	assert.ErrorIs(t, err, ErrSendFailed)
}
