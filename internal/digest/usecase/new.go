package usecase

import (
	"github.com/jonboulle/clockwork"

	"frostwatch-srv/internal/digest"
	"frostwatch-srv/internal/observability"
	"frostwatch-srv/internal/subscription"
	"frostwatch-srv/internal/weather"
	pkgLog "frostwatch-srv/pkg/log"
	"frostwatch-srv/pkg/mailer"
	"frostwatch-srv/pkg/ratelimit"
	"frostwatch-srv/pkg/unsub"
)

// Config holds the sender identity and the base URL used to build
// unsubscribe links.
type Config struct {
	FromEmail     string
	FromName      string
	PublicBaseURL string
}

type usecase struct {
	l       pkgLog.Logger
	cfg     Config
	sub     subscription.UseCase
	weather weather.UseCase
	mailer  mailer.IMailer
	limiter ratelimit.ILimiter
	unsub   unsub.IManager
	metrics *observability.Metrics
	clock   clockwork.Clock
}

func New(
	l pkgLog.Logger,
	cfg Config,
	subUC subscription.UseCase,
	weatherUC weather.UseCase,
	mailClient mailer.IMailer,
	limiter ratelimit.ILimiter,
	unsubMgr unsub.IManager,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) digest.UseCase {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &usecase{
		l:       l,
		cfg:     cfg,
		sub:     subUC,
		weather: weatherUC,
		mailer:  mailClient,
		limiter: limiter,
		unsub:   unsubMgr,
		metrics: metrics,
		clock:   clock,
	}
}
