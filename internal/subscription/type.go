package subscription

import "frostwatch-srv/internal/model"

type SubscribeInput struct {
	Email   string
	ZipCode string
}

type SubscribeOutput struct {
	Subscription model.Subscription
	IsNew        bool
}

// UnsubscribeInput carries either a raw email or a signed unsubscribe token.
// Token takes precedence when both are set.
type UnsubscribeInput struct {
	Email string
	Token string
}
