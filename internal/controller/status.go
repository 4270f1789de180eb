package controller

import (
	"errors"
	"net/http"

	"github.com/prepmint/examcore/internal/model"
)

// StatusFromError maps the service error taxonomy to HTTP status codes.
// Anything outside the taxonomy is a 500; raw store errors never reach the
// client because services wrap them before returning.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrDuplicateQuestion):
		return http.StatusConflict
	case errors.Is(err, model.ErrInsufficientPool):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
