package discord

import (
	"net/http"
	"time"

	"frostwatch-srv/pkg/log"
)

// Config holds webhook client tuning.
type Config struct {
	Timeout         time.Duration
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
}

type webhookInfo struct {
	id    string
	token string
}

type discordImpl struct {
	l       log.Logger
	webhook *webhookInfo
	config  Config
	client  *http.Client
}

// WebhookPayload is the Discord webhook request body.
type WebhookPayload struct {
	Content  string `json:"content"`
	Username string `json:"username,omitempty"`
}
