package weather

import "frostwatch-srv/internal/model"

// Report is the outcome of one ZIP lookup. A nil Location means the lookup
// failed and the subscriber should be skipped for this run.
type Report struct {
	Location *model.Location
	Alerts   []MatchedAlert
}

// MatchedAlert pairs a frost/freeze alert with its plain-English summary.
type MatchedAlert struct {
	Alert   model.Alert
	Summary string
}
