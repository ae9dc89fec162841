package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dom/staybook/internal/domain"
	"github.com/dom/staybook/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"
)

type contextKey string

const (
	ClaimsKey contextKey = "claims"

	// TokenCookie is the cookie that carries the session token.
	TokenCookie = "token"
)

// Auth rejects requests without a valid session token and stores the
// verified claims in the request context.
func Auth(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := tokens.Verify(TokenFromRequest(r))
			if err != nil {
				hlog.FromRequest(r).Debug().Err(err).Str("path", r.URL.Path).Msg("[middleware.Auth] rejected request")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"` + authMessage(err) + `"}`))
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromRequest reads the session cookie, falling back to a bearer
// Authorization header.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return ""
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return "Unauthorized: No token provided"
	case errors.Is(err, domain.ErrTokenExpired):
		return "Unauthorized: Token expired"
	default:
		return "Unauthorized: Invalid token"
	}
}

func GetClaims(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*service.Claims)
	return claims, ok
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
