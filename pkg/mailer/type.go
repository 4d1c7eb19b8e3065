package mailer

import (
	"net/http"
	"time"

	"frostwatch-srv/pkg/log"
)

// Config holds client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// SendInput is one outbound message.
type SendInput struct {
	ToEmail   string
	FromEmail string
	FromName  string
	Subject   string
	HTML      string
}

type mailerImpl struct {
	l      log.Logger
	cfg    Config
	client *http.Client
}

// SendGrid v3 mail/send request body.

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
