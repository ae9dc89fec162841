package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dom/staybook/internal/api/middleware"
	"github.com/dom/staybook/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
		want   string
	}{
		{name: "nothing", want: ""},
		{name: "cookie", cookie: "abc", want: "abc"},
		{name: "bearer header", header: "Bearer xyz", want: "xyz"},
		{name: "cookie wins over header", cookie: "abc", header: "Bearer xyz", want: "abc"},
		{name: "non-bearer header", header: "Basic dXNlcjpwdw==", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, middleware.TokenFromRequest(r))
		})
	}
}

func TestAuth(t *testing.T) {
	tokens := service.NewTokenService("middleware-secret", time.Hour)
	userID := uuid.New()

	valid, err := tokens.Issue(service.Claims{UserID: userID, Email: "a@x.com"})
	require.NoError(t, err)

	expired, err := tokens.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		Issue(service.Claims{UserID: userID, Email: "a@x.com"})
	require.NoError(t, err)

	var seen uuid.UUID
	handler := middleware.Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetUserID(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name           string
		token          string
		expectedStatus int
		expectedError  string
	}{
		{"valid token", valid, http.StatusNoContent, ""},
		{"no token", "", http.StatusUnauthorized, "Unauthorized: No token provided"},
		{"expired token", expired, http.StatusUnauthorized, "Unauthorized: Token expired"},
		{"garbage token", "a.b.c", http.StatusUnauthorized, "Unauthorized: Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = uuid.Nil
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				r.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: tt.token})
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError == "" {
				assert.Equal(t, userID, seen)
				return
			}

			assert.Equal(t, uuid.Nil, seen, "next handler must not run")
			var body struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedError, body.Error)
		})
	}
}

func TestGetUserID_NoClaims(t *testing.T) {
	id, ok := middleware.GetUserID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}

func TestAuth_LogsRejectionsWithRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	requestLogger := zerolog.New(&buf).With().Str("request_id", "req-123").Logger()

	tokens := service.NewTokenService("middleware-secret", time.Hour)
	handler := hlog.NewHandler(requestLogger)(
		middleware.Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		})),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"path":"/profile"`)
}
