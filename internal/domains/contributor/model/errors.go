package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrContributorNotFound = errors.New("contributor not found")

	// ErrUploadFailed wraps gateway failures; the cause string is kept
	// so handlers can surface it with the 502.
	ErrUploadFailed = errors.New("image upload failed")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrContributorNotFound):
		return "CONTRIBUTOR_NOT_FOUND"
	case errors.Is(err, ErrUploadFailed):
		return "UPSTREAM_ERROR"
	case errors.As(err, &vErrs):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrContributorNotFound):
		return 404
	case errors.Is(err, ErrUploadFailed):
		return 502
	case errors.As(err, &vErrs):
		return 422
	default:
		return 500
	}
}
