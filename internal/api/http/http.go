package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcSlog "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/jekabolt/grbpwr-dashboard/internal/apisrv/admin"
	"github.com/jekabolt/grbpwr-dashboard/internal/apisrv/auth"
	"github.com/jekabolt/grbpwr-dashboard/internal/dto"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/middleware"
	"github.com/jekabolt/grbpwr-dashboard/internal/ratelimit"
	"github.com/jekabolt/grbpwr-dashboard/log"
)

const (
	defaultHealthInterval    = 15 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
	corsMaxAge               = 300
)

// Config is the configuration for the http server
type Config struct {
	Port              string        `mapstructure:"port"`
	Address           string        `mapstructure:"address"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins"`
	HealthInterval    time.Duration `mapstructure:"health_interval"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	// TrustProxyHeaders takes the client address from X-Forwarded-For and friends.
	// Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool `mapstructure:"trust_proxy_headers"`
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server serves the admin JSON API and gRPC health on one h2c listener.
type Server struct {
	hs     *http.Server
	gs     *grpc.Server
	health *health.Server
	c      *Config
	done   chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	if config.HealthInterval <= 0 {
		config.HealthInterval = defaultHealthInterval
	}
	if config.ReadHeaderTimeout <= 0 {
		config.ReadHeaderTimeout = defaultReadHeaderTimeout
	}
	return &Server{
		c:      config,
		health: health.NewServer(),
		done:   make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler builds the HTTP API. limiter may be nil.
func (s *Server) Handler(p Pinger, adminServer *admin.Server, authServer *auth.Server, limiter *ratelimit.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.ClientIP(s.c.TrustProxyHeaders),
		s.cors(),
	)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			dto.WriteError(w, r, fmt.Errorf("%w: %w", gerr.ErrStoreUnreachable, err))
			return
		}
		dto.WriteSuccess(w, r, "ok", nil)
	})

	r.Route("/api/admin", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Use(authServer.WithAuth)
		adminServer.Routes(r)
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context,
	p Pinger,
	adminServer *admin.Server,
	authServer *auth.Server,
	limiter *ratelimit.Limiter,
) error {
	opts := []grpcSlog.Option{
		grpcSlog.WithLogOnEvents(grpcSlog.StartCall, grpcSlog.FinishCall),
	}

	s.gs = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcSlog.UnaryServerInterceptor(log.InterceptorLogger(slog.Default()), opts...),
			grpcRecovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpcSlog.StreamServerInterceptor(log.InterceptorLogger(slog.Default()), opts...),
			grpcRecovery.StreamServerInterceptor(),
		),
	)
	healthpb.RegisterHealthServer(s.gs, s.health)

	httpHandler := s.Handler(p, adminServer, authServer, limiter)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ProtoMajor == 2 && strings.Contains(r.Header.Get("Content-Type"), "application/grpc") {
			s.gs.ServeHTTP(w, r)
			return
		}
		httpHandler.ServeHTTP(w, r)
	})

	ctx, cancel := context.WithCancel(ctx)
	go s.watchHealth(ctx, p)

	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: s.c.ReadHeaderTimeout,
	}

	go func() {
		defer close(s.done)
		defer cancel()
		slog.Default().InfoContext(ctx, "dashboard listener started",
			slog.String("addr", listenerAddr),
		)
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
			return
		}
		slog.Default().ErrorContext(ctx, "http server exited with an error",
			slog.String("err", err.Error()),
		)
	}()

	return nil
}

// Stop marks the service as not serving and drains in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	if s.hs == nil {
		return nil
	}
	err := s.hs.Shutdown(ctx)
	if s.gs != nil {
		s.gs.Stop()
	}
	if err != nil {
		return fmt.Errorf("can't shutdown http server: %w", err)
	}
	return nil
}

// watchHealth mirrors store reachability into the gRPC health status.
func (s *Server) watchHealth(ctx context.Context, p Pinger) {
	s.checkHealth(ctx, p)
	ticker := time.NewTicker(s.c.HealthInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.checkHealth(ctx, p)
		}
	}
}

func (s *Server) checkHealth(ctx context.Context, p Pinger) {
	st := healthpb.HealthCheckResponse_SERVING
	if err := p.Ping(ctx); err != nil {
		slog.Default().WarnContext(ctx, "store ping failed",
			slog.String("err", err.Error()),
		)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
}

func (s *Server) cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization", auth.AuthMetadataKey, middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, ratelimit.RemainingHeader},
		AllowCredentials: false,
		MaxAge:           corsMaxAge,
	})
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// local admin console during development
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}
	return false
}
