package discord

import (
	"context"
	"fmt"
	"strings"

	"frostwatch-srv/pkg/log"
)

// IDiscord posts operational messages to a Discord webhook. It is used for
// surfacing unexpected server errors, not for end-user notification.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	ReportBug(ctx context.Context, message string) error
	GetWebhookURL() string
	Close() error
}

func parseWebhookURL(webhookURL string) (id, token string, err error) {
	webhookURL = strings.TrimSpace(webhookURL)
	prefix := "https://discord.com/api/webhooks/"
	if !strings.HasPrefix(webhookURL, prefix) {
		return "", "", fmt.Errorf("discord: invalid webhook URL format")
	}
	rest := strings.TrimPrefix(webhookURL, prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("discord: webhook URL must be .../webhooks/{id}/{token}")
	}
	return parts[0], parts[1], nil
}

// New creates a webhook client from a full webhook URL.
func New(l log.Logger, webhookURL string) (IDiscord, error) {
	if webhookURL == "" {
		return nil, errWebhookRequired
	}
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: &webhookInfo{id: id, token: token},
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
