package errors

// ValidationError is an error tied to a single request field.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationErrorCollector collects multiple validation errors.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}
