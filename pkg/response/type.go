package response

import (
	"encoding/json"
	"time"

	"frostwatch-srv/pkg/errors"
)

// ErrorResp is the error envelope returned to API clients.
type ErrorResp struct {
	Error  string `json:"error"`
	Errors any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain sentinel errors to HTTP errors.
type ErrorMapping map[error]*errors.HTTPError

type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
