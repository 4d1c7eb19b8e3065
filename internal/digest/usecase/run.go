package usecase

import (
	"context"
	"fmt"

	"frostwatch-srv/internal/digest"
	"frostwatch-srv/internal/model"
	"frostwatch-srv/pkg/mailer"
)

func (uc *usecase) Run(ctx context.Context) (digest.RunOutput, error) {
	uc.metrics.DigestRuns.Inc()

	subs, err := uc.sub.ListActive(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.Run.ListActive: %v", err)
		return digest.RunOutput{}, fmt.Errorf("%w: %v", digest.ErrListSubscriptions, err)
	}

	out := digest.RunOutput{Total: len(subs)}
	for _, sub := range subs {
		if uc.process(ctx, sub) {
			out.Success++
		} else {
			out.Failed++
		}
		// The gate applies after every subscriber, success or failure. It is
		// the only pacing mechanism, which is why the loop stays sequential.
		if err := uc.limiter.Wait(ctx); err != nil {
			return out, err
		}
	}

	uc.l.Infof(ctx, "internal.digest.usecase.Run: total %d, success %d, failed %d",
		out.Total, out.Success, out.Failed)
	return out, nil
}

// process handles one subscriber end to end and reports whether an email went
// out. All failure paths are contained here.
func (uc *usecase) process(ctx context.Context, sub model.Subscription) bool {
	report, err := uc.weather.Lookup(ctx, sub.ZipCode)
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.process.Lookup: %s: %v", sub.Email, err)
		uc.metrics.DigestSubscribers.WithLabelValues("failed").Inc()
		return false
	}
	if report.Location == nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.process: zip %s unresolved, skipping %s",
			sub.ZipCode, sub.Email)
		uc.metrics.DigestSubscribers.WithLabelValues("failed").Inc()
		return false
	}

	html, err := uc.render(sub, report)
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.process.Render: %s: %v", sub.Email, err)
		uc.metrics.DigestSubscribers.WithLabelValues("failed").Inc()
		return false
	}

	start := uc.clock.Now()
	err = uc.mailer.Send(ctx, mailer.SendInput{
		ToEmail:   sub.Email,
		FromEmail: uc.cfg.FromEmail,
		FromName:  uc.cfg.FromName,
		Subject:   subjectFor(report, sub.ZipCode),
		HTML:      html,
	})
	uc.metrics.SendDuration.Observe(uc.clock.Since(start).Seconds())
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.process.Send: %s: %v", sub.Email, err)
		uc.metrics.DigestSubscribers.WithLabelValues("failed").Inc()
		return false
	}

	if err := uc.sub.MarkSent(ctx, sub.ID); err != nil {
		// The email is already out; a bookkeeping failure does not undo it.
		uc.l.Errorf(ctx, "internal.digest.usecase.process.MarkSent: %s: %v", sub.Email, err)
	}
	uc.metrics.DigestSubscribers.WithLabelValues("sent").Inc()
	return true
}
