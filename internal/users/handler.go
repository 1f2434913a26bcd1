package users

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsefeed/pulsefeed/internal/platform/httpx"
	"github.com/pulsefeed/pulsefeed/internal/shared"
)

// Handler manages preference endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers preference routes. Callers mount these behind the
// bearer token middleware.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/preferences", h.getPreferences)
	r.Put("/preferences", h.updatePreferences)
}

type preferencesBody struct {
	Preferences []string `json:"preferences"`
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	preferences, err := h.service.GetPreferences(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("get preferences", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, preferencesBody{Preferences: preferences})
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var body preferencesBody
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Preferences == nil {
		body.Preferences = []string{}
	}

	if _, err := h.service.SetPreferences(r.Context(), identity.UserID, body.Preferences); err != nil {
		h.logger.Error("update preferences", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Preferences updated successfully"})
}
