package auth_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsefeed/pulsefeed/internal/auth"
	"github.com/pulsefeed/pulsefeed/internal/users"
)

func newTestRouter(t *testing.T) (chi.Router, *auth.TokenService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := users.NewMemoryRepository()
	tokens := auth.NewTokenService("test-secret", 15*time.Minute)
	handler := auth.NewHandler(logger, auth.NewService(repo, tokens))

	r := chi.NewRouter()
	r.Route("/users", func(r chi.Router) {
		handler.MountRoutes(r)
	})
	return r, tokens
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSignup(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users/signup",
		`{"name":"A","email":"a@x.com","password":"p","preferences":["sports"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body["message"])
}

func TestSignupMissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users/signup", `{"email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Name, email, and password are required", body["error"])
}

func TestSignupDuplicate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users/signup", `{"name":"A","email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/users/signup", `{"name":"B","email":"a@x.com","password":"q"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User already exists", body["error"])
}

func TestLogin(t *testing.T) {
	router, tokens := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users/signup", `{"name":"A","email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/users/login", `{"email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])

	claims, err := tokens.Verify(body["token"])
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users/signup", `{"name":"A","email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	wrongPassword := doJSON(t, router, http.MethodPost, "/users/login", `{"email":"a@x.com","password":"nope"}`)
	unknownEmail := doJSON(t, router, http.MethodPost, "/users/login", `{"email":"b@x.com","password":"p"}`)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
		"error body must not reveal whether email or password was wrong")
}

func TestRequireToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 15*time.Minute)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireToken(tokens))
		r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "missing token")

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code, "invalid token")

	expired := auth.NewTokenService("test-secret", -time.Minute)
	stale, err := expired.Issue("user-1", "a@x.com")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+stale)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code, "expired token")

	good, err := tokens.Issue("user-1", "a@x.com")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+good)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
