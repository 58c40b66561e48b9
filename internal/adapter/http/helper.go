package http

import (
	"errors"
	"net/http"
	"strings"

	"pawnledger/internal/domain/loan"
	"pawnledger/internal/domain/settings"
)

// statusFor maps domain errors to HTTP status codes. Anything unrecognized
// is a persistence-layer failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrAlreadyReturned):
		return http.StatusConflict
	case errors.Is(err, loan.ErrValidation), errors.Is(err, settings.ErrInvalidRate):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
