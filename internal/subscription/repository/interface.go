package repository

import (
	"context"

	"frostwatch-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	GetByEmail(ctx context.Context, email string) (model.Subscription, error)
	Create(ctx context.Context, opts CreateOptions) (model.Subscription, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Subscription, error)
	ListActive(ctx context.Context) ([]model.Subscription, error)
}
