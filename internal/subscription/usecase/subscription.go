package usecase

import (
	"context"
	"regexp"
	"strings"

	"frostwatch-srv/internal/model"
	"frostwatch-srv/internal/subscription"
	"frostwatch-srv/internal/subscription/repository"
)

var (
	zipPattern = regexp.MustCompile(`^\d{5}$`)
	// Basic local@domain.tld shape; deliverability is the mail provider's problem.
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func (uc *usecase) Subscribe(ctx context.Context, ip subscription.SubscribeInput) (subscription.SubscribeOutput, error) {
	email := strings.ToLower(strings.TrimSpace(ip.Email))
	zip := strings.TrimSpace(ip.ZipCode)

	if !emailPattern.MatchString(email) {
		return subscription.SubscribeOutput{}, subscription.ErrInvalidEmail
	}
	if !zipPattern.MatchString(zip) {
		return subscription.SubscribeOutput{}, subscription.ErrInvalidZip
	}

	existing, err := uc.repo.GetByEmail(ctx, email)
	if err == nil {
		active := true
		updated, err := uc.repo.Update(ctx, repository.UpdateOptions{
			ID:      existing.ID,
			ZipCode: &zip,
			Active:  &active,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.subscription.usecase.Subscribe.Update: %v", err)
			return subscription.SubscribeOutput{}, err
		}
		return subscription.SubscribeOutput{Subscription: updated, IsNew: false}, nil
	}
	if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.subscription.usecase.Subscribe.GetByEmail: %v", err)
		return subscription.SubscribeOutput{}, err
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		Subscription: model.Subscription{
			Email:   email,
			ZipCode: zip,
			Active:  true,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.subscription.usecase.Subscribe.Create: %v", err)
		return subscription.SubscribeOutput{}, err
	}
	return subscription.SubscribeOutput{Subscription: created, IsNew: true}, nil
}

func (uc *usecase) Unsubscribe(ctx context.Context, ip subscription.UnsubscribeInput) error {
	email := strings.ToLower(strings.TrimSpace(ip.Email))

	if ip.Token != "" {
		verified, err := uc.unsub.Verify(ip.Token)
		if err != nil {
			uc.l.Warnf(ctx, "internal.subscription.usecase.Unsubscribe.Verify: %v", err)
			return subscription.ErrInvalidToken
		}
		email = strings.ToLower(verified)
	}

	if !emailPattern.MatchString(email) {
		return subscription.ErrInvalidEmail
	}

	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if err == repository.ErrNotFound {
			return subscription.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.subscription.usecase.Unsubscribe.GetByEmail: %v", err)
		return err
	}

	active := false
	if _, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:     existing.ID,
		Active: &active,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.subscription.usecase.Unsubscribe.Update: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) ListActive(ctx context.Context) ([]model.Subscription, error) {
	subs, err := uc.repo.ListActive(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.subscription.usecase.ListActive: %v", err)
		return nil, err
	}
	return subs, nil
}

func (uc *usecase) MarkSent(ctx context.Context, id string) error {
	now := uc.now()
	if _, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:         id,
		LastSentAt: &now,
	}); err != nil {
		if err == repository.ErrNotFound {
			return subscription.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.subscription.usecase.MarkSent: %v", err)
		return err
	}
	return nil
}
