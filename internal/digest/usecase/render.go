package usecase

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"frostwatch-srv/internal/model"
	"frostwatch-srv/internal/weather"
)

const (
	descriptionLimit = 300
	dateFormat       = "Monday, January 2, 2006"
	timestampFormat  = "Jan 2, 2006 3:04 PM MST"
)

// emailTemplate is the whole digest document. html/template escapes every
// interpolated field, so alert text fetched from upstream cannot inject
// markup into the email.
var emailTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#eef2f7;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:600px;margin:0 auto;padding:24px;">
    <div style="background-color:#1e3a5f;color:#ffffff;padding:20px;border-radius:8px 8px 0 0;">
      <h1 style="margin:0;font-size:22px;">Frostwatch Alerts</h1>
      <p style="margin:8px 0 0;font-size:14px;">{{.Date}}</p>
    </div>
    <div style="background-color:#ffffff;padding:20px;border-radius:0 0 8px 8px;">
      <p style="font-size:15px;color:#333333;">Conditions for <strong>{{.Location}}</strong> ({{.ZipCode}})</p>
{{- if .AllClear}}
      <div style="border:1px solid #c3e6cb;background-color:#d4edda;padding:16px;border-radius:6px;margin-top:12px;">
        <p style="margin:0;font-size:15px;color:#155724;"><strong>All clear.</strong> No frost or freeze alerts are in effect for your area right now.</p>
      </div>
{{- else}}
{{- range .Alerts}}
      <div style="border:1px solid #f5c6cb;background-color:#fdf3f4;padding:16px;border-radius:6px;margin-top:12px;">
        <h2 style="margin:0 0 8px;font-size:17px;color:#721c24;">{{.Event}}</h2>
        <p style="margin:0 0 10px;font-size:14px;color:#333333;">{{.Summary}}</p>
        <p style="margin:0 0 10px;font-size:13px;color:#555555;font-style:italic;">{{.Detail}}</p>
        <p style="margin:0;font-size:12px;color:#777777;">
          Severity: {{.Severity}}<br>
          Effective: {{.Effective}}{{if .Expires}}<br>
          Expires: {{.Expires}}{{end}}
        </p>
      </div>
{{- end}}
{{- end}}
      <p style="margin-top:24px;font-size:11px;color:#999999;">
        You are receiving this because you subscribed to frost alerts for ZIP {{.ZipCode}}.
        <a href="{{.UnsubscribeURL}}" style="color:#999999;">Unsubscribe</a>
      </p>
    </div>
  </div>
</body>
</html>
`))

type emailData struct {
	Date           string
	ZipCode        string
	Location       string
	AllClear       bool
	Alerts         []alertCard
	UnsubscribeURL string
}

type alertCard struct {
	Event     string
	Summary   string
	Detail    string
	Severity  string
	Effective string
	Expires   string
}

func (uc *usecase) render(sub model.Subscription, report weather.Report) (string, error) {
	token, err := uc.unsub.Generate(sub.Email)
	if err != nil {
		return "", fmt.Errorf("generate unsubscribe token: %w", err)
	}

	data := emailData{
		Date:           uc.clock.Now().Format(dateFormat),
		ZipCode:        sub.ZipCode,
		Location:       formatLocation(report.Location),
		AllClear:       len(report.Alerts) == 0,
		UnsubscribeURL: uc.cfg.PublicBaseURL + "/unsubscribe?token=" + url.QueryEscape(token),
	}
	for _, ma := range report.Alerts {
		data.Alerts = append(data.Alerts, alertCard{
			Event:     ma.Alert.Event,
			Summary:   ma.Summary,
			Detail:    alertDetail(ma.Alert),
			Severity:  ma.Alert.Severity,
			Effective: ma.Alert.Effective.Format(timestampFormat),
			Expires:   formatExpires(ma.Alert.Expires),
		})
	}

	var buf strings.Builder
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

func subjectFor(report weather.Report, zip string) string {
	if len(report.Alerts) == 0 {
		return fmt.Sprintf("All clear for ZIP %s", zip)
	}
	return fmt.Sprintf("Frost alert for ZIP %s", zip)
}

func formatLocation(loc *model.Location) string {
	if loc.City == "" {
		return loc.State
	}
	if loc.State == "" {
		return loc.City
	}
	return loc.City + ", " + loc.State
}

// alertDetail prefers the official headline; without one it falls back to the
// description, cut at the first 300 characters.
func alertDetail(a model.Alert) string {
	if a.Headline != "" {
		return a.Headline
	}
	runes := []rune(a.Description)
	if len(runes) <= descriptionLimit {
		return a.Description
	}
	return string(runes[:descriptionLimit]) + "..."
}

func formatExpires(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampFormat)
}
