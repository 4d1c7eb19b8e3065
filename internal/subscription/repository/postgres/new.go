package postgres

import (
	"time"

	"frostwatch-srv/internal/subscription/repository"
	pkgLog "frostwatch-srv/pkg/log"

	"gorm.io/gorm"
)

type implRepository struct {
	l     pkgLog.Logger
	db    *gorm.DB
	clock func() time.Time
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *gorm.DB) *implRepository {
	return &implRepository{
		l:     l,
		db:    db,
		clock: time.Now,
	}
}
