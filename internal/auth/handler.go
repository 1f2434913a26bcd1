package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pulsefeed/pulsefeed/internal/platform/httpx"
	"github.com/pulsefeed/pulsefeed/internal/shared"
)

// Handler wires HTTP endpoints for signup and login.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
}

type signupRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required"`
	Password    string   `json:"password" validate:"required"`
	Preferences []string `json:"preferences"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, shared.ErrValidation.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, shared.ErrValidation.Error())
		return
	}

	if _, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password, req.Preferences); err != nil {
		h.logger.Warn("signup rejected", slog.String("email", req.Email), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "User registered successfully"})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusUnauthorized, shared.ErrInvalidCredentials.Error())
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login rejected", slog.String("email", req.Email))
		httpx.Error(w, http.StatusUnauthorized, shared.ErrInvalidCredentials.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"token": token})
}
