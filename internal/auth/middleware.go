package auth

import (
	"net/http"
	"strings"

	"github.com/pulsefeed/pulsefeed/internal/platform/httpx"
	"github.com/pulsefeed/pulsefeed/internal/shared"
)

// RequireToken guards routes behind bearer token authentication. A missing
// token is rejected with 401, an invalid or expired one with 403; on success
// the resolved identity is attached to the request context.
func RequireToken(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				httpx.Error(w, http.StatusUnauthorized, "Access token required")
				return
			}
			claims, err := tokens.Verify(raw)
			if err != nil {
				httpx.Error(w, http.StatusForbidden, shared.ErrInvalidToken.Error())
				return
			}
			identity := &shared.Identity{UserID: claims.UserID, Email: claims.Email}
			next.ServeHTTP(w, r.WithContext(shared.ContextWithIdentity(r.Context(), identity)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
