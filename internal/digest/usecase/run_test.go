package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frostwatch-srv/internal/digest"
	"frostwatch-srv/internal/model"
	"frostwatch-srv/internal/observability"
	"frostwatch-srv/internal/subscription"
	"frostwatch-srv/internal/weather"
	pkgLog "frostwatch-srv/pkg/log"
	"frostwatch-srv/pkg/mailer"
	"frostwatch-srv/pkg/ratelimit"
)

type fakeSubscriptions struct {
	subs    []model.Subscription
	listErr error

	markSentIDs []string
	markSentErr error
}

func (f *fakeSubscriptions) Subscribe(_ context.Context, _ subscription.SubscribeInput) (subscription.SubscribeOutput, error) {
	return subscription.SubscribeOutput{}, nil
}

func (f *fakeSubscriptions) Unsubscribe(_ context.Context, _ subscription.UnsubscribeInput) error {
	return nil
}

func (f *fakeSubscriptions) ListActive(_ context.Context) ([]model.Subscription, error) {
	return f.subs, f.listErr
}

func (f *fakeSubscriptions) MarkSent(_ context.Context, id string) error {
	f.markSentIDs = append(f.markSentIDs, id)
	return f.markSentErr
}

type fakeWeather struct {
	reports map[string]weather.Report
}

func (f *fakeWeather) Lookup(_ context.Context, zip string) (weather.Report, error) {
	return f.reports[zip], nil
}

type fakeMailer struct {
	sent    []mailer.SendInput
	failFor map[string]error
}

func (f *fakeMailer) Send(_ context.Context, input mailer.SendInput) error {
	if err, ok := f.failFor[input.ToEmail]; ok {
		return err
	}
	f.sent = append(f.sent, input)
	return nil
}

func (f *fakeMailer) Close() error { return nil }

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelError,
		Mode:     pkgLog.ModeDevelopment,
		Encoding: pkgLog.EncodingConsole,
	})
}

func okReport() weather.Report {
	return weather.Report{Location: chicagoLocation()}
}

func runUsecase(subs *fakeSubscriptions, wx *fakeWeather, mail *fakeMailer, fc clockwork.Clock) digest.UseCase {
	return New(
		testLogger(),
		Config{
			FromEmail:     "alerts@frostwatch.example",
			FromName:      "Frostwatch",
			PublicBaseURL: "https://frostwatch.example",
		},
		subs,
		wx,
		mail,
		ratelimit.NewFixedInterval(time.Second, fc),
		fakeTokens{},
		observability.NewMetrics(prometheus.NewRegistry()),
		fc,
	)
}

// drive advances the fake clock through n limiter waits while Run executes.
func drive(t *testing.T, fc *clockwork.FakeClock, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		fc.BlockUntil(1)
		fc.Advance(time.Second)
	}
}

func TestRun_AllSubscribersSent(t *testing.T) {
	subs := &fakeSubscriptions{subs: []model.Subscription{
		{ID: "id-1", Email: "a@example.com", ZipCode: "60601", Active: true},
		{ID: "id-2", Email: "b@example.com", ZipCode: "78701", Active: true},
	}}
	wx := &fakeWeather{reports: map[string]weather.Report{
		"60601": okReport(),
		"78701": okReport(),
	}}
	mail := &fakeMailer{}
	fc := clockwork.NewFakeClock()

	uc := runUsecase(subs, wx, mail, fc)

	type result struct {
		out digest.RunOutput
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := uc.Run(context.Background())
		done <- result{out, err}
	}()
	drive(t, fc, 2)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, digest.RunOutput{Total: 2, Success: 2, Failed: 0}, res.out)

	require.Len(t, mail.sent, 2)
	assert.Equal(t, "a@example.com", mail.sent[0].ToEmail)
	assert.Equal(t, "b@example.com", mail.sent[1].ToEmail)
	assert.Equal(t, []string{"id-1", "id-2"}, subs.markSentIDs)
}

func TestRun_GeocodeFailureSkipsSubscriberAndStillThrottles(t *testing.T) {
	subs := &fakeSubscriptions{subs: []model.Subscription{
		{ID: "id-1", Email: "a@example.com", ZipCode: "60601", Active: true},
		{ID: "id-2", Email: "b@example.com", ZipCode: "00000", Active: true},
		{ID: "id-3", Email: "c@example.com", ZipCode: "78701", Active: true},
	}}
	wx := &fakeWeather{reports: map[string]weather.Report{
		"60601": okReport(),
		"00000": {}, // nil Location: lookup failed upstream
		"78701": okReport(),
	}}
	mail := &fakeMailer{}
	fc := clockwork.NewFakeClock()
	start := fc.Now()

	uc := runUsecase(subs, wx, mail, fc)

	type result struct {
		out digest.RunOutput
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := uc.Run(context.Background())
		done <- result{out, err}
	}()
	// The gate fires after every subscriber, including the skipped one.
	drive(t, fc, 3)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, digest.RunOutput{Total: 3, Success: 2, Failed: 1}, res.out)

	require.Len(t, mail.sent, 2)
	assert.Equal(t, "a@example.com", mail.sent[0].ToEmail)
	assert.Equal(t, "c@example.com", mail.sent[1].ToEmail)
	assert.Equal(t, []string{"id-1", "id-3"}, subs.markSentIDs)
	assert.GreaterOrEqual(t, fc.Now().Sub(start), 3*time.Second)
}

func TestRun_SendFailureCountsFailedAndContinues(t *testing.T) {
	subs := &fakeSubscriptions{subs: []model.Subscription{
		{ID: "id-1", Email: "a@example.com", ZipCode: "60601", Active: true},
		{ID: "id-2", Email: "b@example.com", ZipCode: "78701", Active: true},
	}}
	wx := &fakeWeather{reports: map[string]weather.Report{
		"60601": okReport(),
		"78701": okReport(),
	}}
	mail := &fakeMailer{failFor: map[string]error{
		"a@example.com": mailer.ErrSendFailed,
	}}
	fc := clockwork.NewFakeClock()

	uc := runUsecase(subs, wx, mail, fc)

	type result struct {
		out digest.RunOutput
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := uc.Run(context.Background())
		done <- result{out, err}
	}()
	drive(t, fc, 2)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, digest.RunOutput{Total: 2, Success: 1, Failed: 1}, res.out)
	assert.Equal(t, []string{"id-2"}, subs.markSentIDs)
}

func TestRun_MarkSentFailureStillCountsSuccess(t *testing.T) {
	subs := &fakeSubscriptions{
		subs: []model.Subscription{
			{ID: "id-1", Email: "a@example.com", ZipCode: "60601", Active: true},
		},
		markSentErr: errors.New("connection reset"),
	}
	wx := &fakeWeather{reports: map[string]weather.Report{"60601": okReport()}}
	mail := &fakeMailer{}
	fc := clockwork.NewFakeClock()

	uc := runUsecase(subs, wx, mail, fc)

	type result struct {
		out digest.RunOutput
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := uc.Run(context.Background())
		done <- result{out, err}
	}()
	drive(t, fc, 1)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, digest.RunOutput{Total: 1, Success: 1, Failed: 0}, res.out)
	require.Len(t, mail.sent, 1)
}

func TestRun_ListFailureAbortsRun(t *testing.T) {
	subs := &fakeSubscriptions{listErr: errors.New("connection refused")}
	uc := runUsecase(subs, &fakeWeather{}, &fakeMailer{}, clockwork.NewFakeClock())

	out, err := uc.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, digest.ErrListSubscriptions)
	assert.Equal(t, digest.RunOutput{}, out)
}
