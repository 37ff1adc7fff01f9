package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jekabolt/grbpwr-dashboard/config"
	httpapi "github.com/jekabolt/grbpwr-dashboard/internal/api/http"
	"github.com/jekabolt/grbpwr-dashboard/internal/apisrv/admin"
	"github.com/jekabolt/grbpwr-dashboard/internal/apisrv/auth"
	"github.com/jekabolt/grbpwr-dashboard/internal/dashboard"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/ratelimit"
	"github.com/jekabolt/grbpwr-dashboard/internal/store"
)

// App is the main application
type App struct {
	hs      *httpapi.Server
	db      dependency.Repository
	limiter *ratelimit.Limiter
	c       *config.Config
	done    chan struct{}
	once    sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start connects the store and starts the API server.
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting dashboard")

	db, err := store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}
	a.db = db

	authS, err := auth.New(&a.c.Auth)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server",
			slog.String("err", err.Error()),
		)
		a.db.Close()
		return err
	}

	adminS := admin.New(dashboard.New(&a.c.Dashboard, a.db))

	if a.c.RateLimit.Max > 0 {
		a.limiter = ratelimit.NewLimiter(a.c.RateLimit.Window, a.c.RateLimit.Max)
	}

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, a.db, adminS, authS, a.limiter); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		a.db.Close()
		return err
	}

	go func() {
		<-a.hs.Done()
		a.once.Do(func() { close(a.done) })
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server stop failed",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
	a.once.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}
