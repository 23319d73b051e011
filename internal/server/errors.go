package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/assess"
	"github.com/jonathan/resume-builder/internal/schemas"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Collection-boundary validation failures are the client's fault; assessment
// failures come from the upstream generative service.
func HTTPStatus(err error) int {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return http.StatusBadRequest
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest
	}

	var assessErr *assess.Error
	if errors.As(err, &assessErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
