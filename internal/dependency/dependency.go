package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --name "^(Orders|Products|Users|Repository|Dashboard)$" --output=./mocks
type (
	Orders interface {
		// ListRecentOrders returns up to limit orders, most recent first, with their items.
		ListRecentOrders(ctx context.Context, limit int) ([]entity.Order, error)
	}

	Products interface {
		// ListProducts returns up to limit products ordered by creation time.
		ListProducts(ctx context.Context, limit int) ([]entity.Product, error)
	}

	Users interface {
		// ListUsers returns every customer account, admins excluded.
		ListUsers(ctx context.Context) ([]entity.User, error)
	}

	Repository interface {
		Orders() Orders
		Products() Products
		Users() Users
		Now() time.Time
		Ping(ctx context.Context) error
		Close()
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Dashboard computes admin dashboard analytics from a fresh snapshot on every call.
	Dashboard interface {
		Build(ctx context.Context) (*entity.Dashboard, error)
		RevenueChart(ctx context.Context, period entity.ChartPeriod, days int) ([]entity.TimeSeriesPoint, error)
		OrderStatistics(ctx context.Context, period entity.ChartPeriod, days int) (*entity.OrderStatistics, error)
		TopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error)
		LowStockProducts(ctx context.Context, threshold int) ([]entity.Product, error)
		CustomerInsights(ctx context.Context) (*entity.CustomerInsights, error)
		TopCustomers(ctx context.Context, limit int) ([]entity.CustomerStat, error)
	}
)
