package postgres

import (
	"context"
	"errors"
	"strings"

	"frostwatch-srv/internal/model"
	"frostwatch-srv/internal/subscription/repository"
	postgresPkg "frostwatch-srv/pkg/postgre"

	"gorm.io/gorm"
)

func (r *implRepository) GetByEmail(ctx context.Context, email string) (model.Subscription, error) {
	var m subscriptionModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Subscription{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.subscription.repository.postgres.GetByEmail: %v", err)
		return model.Subscription{}, err
	}
	return m.toDomain(), nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Subscription, error) {
	sub := opts.Subscription
	if sub.ID == "" {
		sub.ID = postgresPkg.NewUUID()
	} else if err := postgresPkg.IsUUID(sub.ID); err != nil {
		r.l.Errorf(ctx, "internal.subscription.repository.postgres.Create.IsUUID: %v", err)
		return model.Subscription{}, err
	}
	sub.Email = strings.ToLower(sub.Email)

	m := fromDomain(sub)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.l.Errorf(ctx, "internal.subscription.repository.postgres.Create: %v", err)
		return model.Subscription{}, err
	}
	return m.toDomain(), nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Subscription, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.subscription.repository.postgres.Update.IsUUID: %v", err)
		return model.Subscription{}, err
	}

	updates := map[string]any{
		"updated_at": r.clock(),
	}
	if opts.ZipCode != nil {
		updates["zip_code"] = *opts.ZipCode
	}
	if opts.Active != nil {
		updates["active"] = *opts.Active
	}
	if opts.LastSentAt != nil {
		updates["last_sent_at"] = *opts.LastSentAt
	}

	res := r.db.WithContext(ctx).
		Model(&subscriptionModel{}).
		Where("id = ?", opts.ID).
		Updates(updates)
	if res.Error != nil {
		r.l.Errorf(ctx, "internal.subscription.repository.postgres.Update: %v", res.Error)
		return model.Subscription{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Subscription{}, repository.ErrNotFound
	}

	var m subscriptionModel
	if err := r.db.WithContext(ctx).Where("id = ?", opts.ID).First(&m).Error; err != nil {
		r.l.Errorf(ctx, "internal.subscription.repository.postgres.Update.Reload: %v", err)
		return model.Subscription{}, err
	}
	return m.toDomain(), nil
}

func (r *implRepository) ListActive(ctx context.Context) ([]model.Subscription, error) {
	var ms []subscriptionModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		r.l.Errorf(ctx, "internal.subscription.repository.postgres.ListActive: %v", err)
		return nil, err
	}

	res := make([]model.Subscription, len(ms))
	for i, m := range ms {
		res[i] = m.toDomain()
	}
	return res, nil
}
