package news

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsefeed/pulsefeed/internal/platform/httpx"
	"github.com/pulsefeed/pulsefeed/internal/shared"
)

// PreferenceSource resolves a user's preference list.
type PreferenceSource interface {
	GetPreferences(ctx context.Context, id string) ([]string, error)
}

// Handler serves the personalized news endpoint.
type Handler struct {
	logger      *slog.Logger
	aggregator  *Service
	preferences PreferenceSource
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, aggregator *Service, preferences PreferenceSource) *Handler {
	return &Handler{logger: logger, aggregator: aggregator, preferences: preferences}
}

// MountRoutes registers news routes. Callers mount these behind the bearer
// token middleware.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.getNews)
}

func (h *Handler) getNews(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch news")
		return
	}

	preferences, err := h.preferences.GetPreferences(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("resolve preferences", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	articles, err := h.aggregator.AggregateForPreferences(r.Context(), preferences)
	if err != nil {
		h.logger.Error("aggregate news", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch news")
		return
	}
	if articles == nil {
		articles = []Article{}
	}
	httpx.JSON(w, http.StatusOK, map[string][]Article{"news": articles})
}
