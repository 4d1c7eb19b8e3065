package mailer

import (
	"context"

	"frostwatch-srv/pkg/log"
)

// IMailer sends transactional email through the SendGrid v3 API.
type IMailer interface {
	Send(ctx context.Context, input SendInput) error
	Close() error
}

// New creates a SendGrid mail client.
func New(l log.Logger, cfg Config) (IMailer, error) {
	if cfg.APIKey == "" {
		return nil, errAPIKeyRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &mailerImpl{
		l:      l,
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
	}, nil
}
