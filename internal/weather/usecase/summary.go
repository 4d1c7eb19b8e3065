package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"frostwatch-srv/internal/model"
)

// tempPattern matches the first "NN degrees" / "NN degree" / "NN°" occurrence
// in an alert description.
var tempPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:degrees?|°)`)

// summaryRule pairs an event-name phrase with its template. Rules are
// evaluated in order and the first match wins, so more specific phrases must
// come first: "hard freeze warning" contains "freeze warning" and would never
// be reached the other way around.
type summaryRule struct {
	phrase string
	render func(temp string) string
}

var summaryRules = []summaryRule{
	{
		phrase: "hard freeze warning",
		render: func(temp string) string {
			clause := ""
			if temp != "" {
				clause = fmt.Sprintf(" to around %s degrees", temp)
			}
			return fmt.Sprintf("A Hard Freeze Warning is in effect for your area. "+
				"Temperatures are expected to drop well below freezing%s, which will kill most "+
				"outdoor plants and can burst exposed pipes. Move potted plants indoors, wrap or "+
				"drip outdoor faucets, and make sure pets and livestock have shelter.", clause)
		},
	},
	{
		phrase: "freeze warning",
		render: func(temp string) string {
			clause := ""
			if temp != "" {
				clause = fmt.Sprintf(" near %s degrees", temp)
			}
			return fmt.Sprintf("A Freeze Warning is in effect for your area. "+
				"Sub-freezing temperatures%s are expected, which can damage or kill sensitive "+
				"vegetation. Cover tender plants or bring them inside, and disconnect garden "+
				"hoses before nightfall.", clause)
		},
	},
	{
		phrase: "frost advisory",
		render: func(temp string) string {
			clause := ""
			if temp != "" {
				clause = fmt.Sprintf(" with temperatures around %s degrees", temp)
			}
			return fmt.Sprintf("A Frost Advisory is in effect for your area. "+
				"Frost is likely to form overnight%s, which can harm sensitive outdoor plants. "+
				"Cover tender vegetation in the evening and uncover it after the morning thaw.", clause)
		},
	},
	{
		phrase: "freeze watch",
		render: func(_ string) string {
			return "A Freeze Watch is in effect for your area. Conditions are favorable for " +
				"sub-freezing temperatures in the next day or two. Keep an eye on the forecast " +
				"and plan to protect sensitive plants and outdoor plumbing."
		},
	},
}

const genericSummary = "Cold weather conditions affecting your area have been reported. " +
	"Review the official alert details below and take reasonable precautions to protect " +
	"plants, pets, and exposed plumbing."

// summarize maps an alert to its plain-English advisory paragraph. Pure
// function: no side effects, no external calls.
func summarize(a model.Alert) string {
	event := strings.ToLower(a.Event)
	temp := extractTemperature(a.Description)

	for _, rule := range summaryRules {
		if strings.Contains(event, rule.phrase) {
			return rule.render(temp)
		}
	}
	return genericSummary
}

// extractTemperature returns the first temperature figure found in the
// description, or "" when none is present.
func extractTemperature(description string) string {
	m := tempPattern.FindStringSubmatch(description)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
