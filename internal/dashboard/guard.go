package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jekabolt/grbpwr-dashboard/internal/middleware"
)

// guard runs one calculator and substitutes fallback when it fails or panics.
func guard[T any](ctx context.Context, name string, fallback T, fn func() (T, error)) (res T) {
	defer func() {
		if r := recover(); r != nil {
			middleware.Logger(ctx).ErrorContext(ctx, "dashboard calculator panicked",
				slog.String("calculator", name),
				slog.String("err", fmt.Sprint(r)),
			)
			res = fallback
		}
	}()

	res, err := fn()
	if err != nil {
		middleware.Logger(ctx).ErrorContext(ctx, "dashboard calculator failed",
			slog.String("calculator", name),
			slog.String("err", err.Error()),
		)
		return fallback
	}
	return res
}

// pure adapts a calculator that cannot return an error.
func pure[T any](fn func() T) func() (T, error) {
	return func() (T, error) {
		return fn(), nil
	}
}
