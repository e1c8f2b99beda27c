package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrUploadFailed = errors.New("image upload failed")

func ToErrorCode(err error) string {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrUploadFailed):
		return "UPSTREAM_ERROR"
	case errors.As(err, &vErrs):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrUploadFailed):
		return 502
	case errors.As(err, &vErrs):
		return 422
	default:
		return 500
	}
}
