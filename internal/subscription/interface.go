package subscription

import (
	"context"

	"frostwatch-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Subscribe(ctx context.Context, ip SubscribeInput) (SubscribeOutput, error)
	Unsubscribe(ctx context.Context, ip UnsubscribeInput) error
	ListActive(ctx context.Context) ([]model.Subscription, error)
	MarkSent(ctx context.Context, id string) error
}
