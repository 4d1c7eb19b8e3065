package mailer

import "time"

const (
	DefaultBaseURL = "https://api.sendgrid.com"
	DefaultTimeout = 30 * time.Second

	sendPath        = "/v3/mail/send"
	contentTypeHTML = "text/html"
)
