package http

import (
	"frostwatch-srv/internal/digest"
	"frostwatch-srv/internal/subscription"
	"frostwatch-srv/pkg/log"
)

type Handler struct {
	l      log.Logger
	uc     subscription.UseCase
	digest digest.UseCase
}

func New(l log.Logger, uc subscription.UseCase, digestUC digest.UseCase) *Handler {
	return &Handler{
		l:      l,
		uc:     uc,
		digest: digestUC,
	}
}
