package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frostwatch-srv/internal/model"
)

func TestSummarize_HardFreezeBeatsFreezeWarning(t *testing.T) {
	// "Hard Freeze Warning" contains "Freeze Warning"; the more specific
	// paragraph must win.
	got := summarize(model.Alert{Event: "Hard Freeze Warning"})
	assert.Contains(t, got, "Hard Freeze Warning is in effect")
	assert.Contains(t, got, "burst exposed pipes")
	assert.NotContains(t, got, "disconnect garden hoses")
}

func TestSummarize_FreezeWarning(t *testing.T) {
	got := summarize(model.Alert{Event: "Freeze Warning"})
	assert.Contains(t, got, "A Freeze Warning is in effect")
	assert.Contains(t, got, "disconnect garden hoses")
}

func TestSummarize_FrostAdvisoryWithTemperature(t *testing.T) {
	got := summarize(model.Alert{
		Event:       "Frost Advisory",
		Description: "Temperatures as low as 33 degrees will result in frost formation.",
	})
	assert.Contains(t, got, "A Frost Advisory is in effect")
	assert.Contains(t, got, "with temperatures around 33 degrees")
}

func TestSummarize_FreezeWarningWithDegreeSymbol(t *testing.T) {
	got := summarize(model.Alert{
		Event:       "Freeze Warning",
		Description: "Lows near 28° expected overnight.",
	})
	assert.Contains(t, got, "near 28 degrees")
}

func TestSummarize_TemperatureClauseOmittedWhenAbsent(t *testing.T) {
	got := summarize(model.Alert{
		Event:       "Frost Advisory",
		Description: "Patchy frost possible in low-lying areas.",
	})
	assert.Contains(t, got, "Frost is likely to form overnight,")
	assert.NotContains(t, got, "around")
}

func TestSummarize_FreezeWatch(t *testing.T) {
	got := summarize(model.Alert{Event: "Freeze Watch", Description: "Lows near 30 degrees possible."})
	assert.Contains(t, got, "A Freeze Watch is in effect")
	// The watch paragraph never interpolates a temperature.
	assert.NotContains(t, got, "30")
}

func TestSummarize_GenericFallback(t *testing.T) {
	got := summarize(model.Alert{Event: "Extreme Cold Warning", Description: "Wind chills to 30 below."})
	assert.Equal(t, genericSummary, got)
}

func TestSummarize_MatchesCaseInsensitively(t *testing.T) {
	got := summarize(model.Alert{Event: "FREEZE WARNING"})
	assert.Contains(t, got, "A Freeze Warning is in effect")
}

func TestExtractTemperature_FirstMatchWins(t *testing.T) {
	assert.Equal(t, "29", extractTemperature("Lows of 29 degrees, then 25 degrees Tuesday."))
	assert.Equal(t, "31", extractTemperature("Readings around 31°F expected."))
	assert.Equal(t, "", extractTemperature("Frost possible in sheltered valleys."))
}
