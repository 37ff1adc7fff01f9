package auth

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-dashboard/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "hehe"

func newAuth(t *testing.T) *Server {
	t.Helper()
	s, err := New(&Config{JWTSecret: jwtSecret, JWTTTL: "60m"})
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	_, err := New(&Config{JWTSecret: "", JWTTTL: "60m"})
	assert.Error(t, err)

	_, err = New(&Config{JWTSecret: jwtSecret, JWTTTL: "forever"})
	assert.Error(t, err)
}

func TestWithAuth(t *testing.T) {
	s := newAuth(t)

	admin, err := s.IssueToken("ops")
	require.NoError(t, err)
	noRole, err := jwt.NewTokenWithRole(s.JwtAuth, time.Hour, "buyer", "")
	require.NoError(t, err)
	expired, err := jwt.NewAdminToken(s.JwtAuth, -time.Minute, "ops")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		value   string
		code    int
		subject string
	}{
		{name: "authorization header", header: "Authorization", value: "Bearer " + admin, code: http.StatusOK, subject: "ops"},
		{name: "grpc metadata header", header: AuthMetadataKey, value: "Bearer " + admin, code: http.StatusOK, subject: "ops"},
		{name: "missing", code: http.StatusUnauthorized},
		{name: "no bearer prefix", header: "Authorization", value: admin, code: http.StatusUnauthorized},
		{name: "garbage", header: "Authorization", value: "Bearer abc.def.ghi", code: http.StatusUnauthorized},
		{name: "expired", header: "Authorization", value: "Bearer " + expired, code: http.StatusUnauthorized},
		{name: "not admin", header: "Authorization", value: "Bearer " + noRole, code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subject string
			h := s.WithAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject = middleware.GetSubject(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.subject, subject)
		})
	}
}

func TestWithAuthLogsRejection(t *testing.T) {
	s := newAuth(t)
	noRole, err := jwt.NewTokenWithRole(s.JwtAuth, time.Hour, "buyer", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := middleware.RequestID(s.WithAuth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+noRole)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rejected admin token", entry["msg"])
	assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), entry["request_id"])
	assert.NotEmpty(t, entry["request_id"])
	assert.Equal(t, "buyer", entry["subject"])
}
