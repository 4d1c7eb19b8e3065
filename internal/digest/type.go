package digest

// RunOutput aggregates one batch run.
type RunOutput struct {
	Total   int
	Success int
	Failed  int
}
