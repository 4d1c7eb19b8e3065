package usecase

import (
	"strings"

	"frostwatch-srv/internal/model"
	"frostwatch-srv/pkg/nws"
)

// frostKeywords is the fixed set of substrings that classify an alert as
// relevant. Matching is case-folded substring containment over event,
// headline, and description.
var frostKeywords = []string{
	"frost",
	"freeze",
	"freezing",
	"hard freeze",
	"killing frost",
}

func toModelAlerts(alerts []nws.Alert) []model.Alert {
	res := make([]model.Alert, len(alerts))
	for i, a := range alerts {
		res[i] = model.Alert{
			Event:       a.Event,
			Headline:    a.Headline,
			Description: a.Description,
			Severity:    a.Severity,
			Effective:   a.Effective,
			Expires:     a.Expires,
		}
	}
	return res
}

// filterFrostAlerts keeps alerts whose event, headline, or description
// contains any frost/freeze keyword. Upstream order is preserved.
func filterFrostAlerts(alerts []model.Alert) []model.Alert {
	matched := make([]model.Alert, 0, len(alerts))
	for _, a := range alerts {
		if matchesFrostKeyword(a) {
			matched = append(matched, a)
		}
	}
	return matched
}

func matchesFrostKeyword(a model.Alert) bool {
	haystacks := []string{
		strings.ToLower(a.Event),
		strings.ToLower(a.Headline),
		strings.ToLower(a.Description),
	}
	for _, h := range haystacks {
		for _, kw := range frostKeywords {
			if strings.Contains(h, kw) {
				return true
			}
		}
	}
	return false
}
