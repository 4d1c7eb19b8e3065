package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
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

// Send performs a single POST /v3/mail/send attempt.
func (m *mailerImpl) Send(ctx context.Context, input SendInput) error {
	body := sendRequest{
		Personalizations: []personalization{
			{To: []emailAddress{{Email: input.ToEmail}}},
		},
		From:    emailAddress{Email: input.FromEmail, Name: input.FromName},
		Subject: input.Subject,
		Content: []content{{Type: contentTypeHTML, Value: input.HTML}},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+sendPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrSendFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}
	return nil
}

func (m *mailerImpl) Close() error {
	if m.client != nil {
		m.client.CloseIdleConnections()
	}
	return nil
}
