package http

import (
	"net/http"

	"frostwatch-srv/internal/subscription"
	pkgErrors "frostwatch-srv/pkg/errors"
	"frostwatch-srv/pkg/response"
)

const (
	errCodeInvalidBody = iota + 40001
	errCodeMissingTarget
	errCodeInvalidEmail
	errCodeInvalidZip
	errCodeInvalidToken
	errCodeNotFound
)

var errorMapping = response.ErrorMapping{
	subscription.ErrInvalidEmail: pkgErrors.NewHTTPError(errCodeInvalidEmail, "Invalid email address", http.StatusBadRequest),
	subscription.ErrInvalidZip:   pkgErrors.NewHTTPError(errCodeInvalidZip, "ZIP code must be 5 digits", http.StatusBadRequest),
	subscription.ErrInvalidToken: pkgErrors.NewHTTPError(errCodeInvalidToken, "Invalid or expired unsubscribe token", http.StatusBadRequest),
	subscription.ErrNotFound:     pkgErrors.NewHTTPError(errCodeNotFound, "No subscription found for that email", http.StatusNotFound),
}
