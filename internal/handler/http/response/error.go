package response

import (
	"errors"
	"net/http"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Work entry domain errors
	case errors.Is(err, workentry.ErrWorkEntryNotFound):
		NotFound(w, "Work entry not found")
	case errors.Is(err, workentry.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this work entry")

	// Insight domain errors
	case errors.Is(err, insight.ErrMissingCompanyScope):
		Unauthorized(w, "Missing company scope")
	case errors.Is(err, insight.ErrMissingUserScope):
		Unauthorized(w, "Missing user scope")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
