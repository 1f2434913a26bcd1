package httpx

import (
	"errors"
	"net/http"

	"github.com/pulsefeed/pulsefeed/internal/shared"
)

// RespondError maps domain errors to HTTP responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrDuplicateUser):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, shared.ErrInvalidToken):
		Error(w, http.StatusForbidden, shared.ErrInvalidToken.Error())
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, shared.ErrNotFound.Error())
	default:
		Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
