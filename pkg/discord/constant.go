package discord

import "time"

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"

	// MaxMessageLength is Discord's hard limit on message content.
	MaxMessageLength = 2000
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryCount = 3
	DefaultRetryDelay = 1 * time.Second
)

const (
	DefaultUsername = "Frostwatch Bot"
	UserAgent       = "frostwatch-srv/1.0"
)
