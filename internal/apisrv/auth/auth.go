package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jekabolt/grbpwr-dashboard/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-dashboard/internal/dto"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/middleware"
)

const (
	// AuthMetadataKey is the header grpc-gateway style clients send the token in.
	AuthMetadataKey = "Grpc-Metadata-Authorization"
	bearerPrefix    = "Bearer "
)

// Server guards the admin API with HS256 tokens carrying the admin role.
type Server struct {
	JwtAuth *jwtauth.JWTAuth
	jwtTTL  time.Duration
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret string `mapstructure:"jwtSecret"`
	JWTTTL    string `mapstructure:"jwtttl"`
}

// New creates a new auth server.
func New(c *Config) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("can't parse jwt ttl: %w", err)
	}
	return &Server{
		JwtAuth: jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:  ttl,
	}, nil
}

// IssueToken mints an admin token for subject valid for the configured ttl.
func (s *Server) IssueToken(subject string) (string, error) {
	return jwt.NewAdminToken(s.JwtAuth, s.jwtTTL, subject)
}

// WithAuth middleware admits only requests with a valid admin token.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			dto.WriteError(w, r, gerr.ErrUnauthorized)
			return
		}
		claims, err := jwt.VerifyAdminToken(s.JwtAuth, token)
		if err != nil {
			log := middleware.Logger(r.Context())
			if claims != nil && claims.Subject != "" {
				log = log.With(slog.String("subject", claims.Subject))
			}
			log.WarnContext(r.Context(), "rejected admin token",
				slog.String("ip", middleware.GetClientIP(r.Context())),
				slog.String("err", err.Error()),
			)
			if errors.Is(err, jwt.ErrNotAdmin) {
				dto.WriteError(w, r, gerr.ErrForbidden)
				return
			}
			dto.WriteError(w, r, gerr.ErrUnauthorized)
			return
		}
		ctx := middleware.WithSubject(r.Context(), claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromRequest(r *http.Request) string {
	for _, h := range []string{"Authorization", AuthMetadataKey} {
		if v := r.Header.Get(h); strings.HasPrefix(v, bearerPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(v, bearerPrefix))
		}
	}
	return ""
}
