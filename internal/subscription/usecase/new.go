package usecase

import (
	"time"

	"frostwatch-srv/internal/subscription"
	"frostwatch-srv/internal/subscription/repository"
	pkgLog "frostwatch-srv/pkg/log"
	"frostwatch-srv/pkg/unsub"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	unsub unsub.IManager
	now   func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, unsubMgr unsub.IManager) subscription.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		unsub: unsubMgr,
		now:   time.Now,
	}
}
