package config

import (
	"errors"
	"fmt"
	"strings"

	httpapi "github.com/jekabolt/grbpwr-dashboard/internal/api/http"
	"github.com/jekabolt/grbpwr-dashboard/internal/apisrv/auth"
	"github.com/jekabolt/grbpwr-dashboard/internal/dashboard"
	"github.com/jekabolt/grbpwr-dashboard/internal/ratelimit"
	"github.com/jekabolt/grbpwr-dashboard/internal/store"
	"github.com/jekabolt/grbpwr-dashboard/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Auth      auth.Config      `mapstructure:"auth"`
	Dashboard dashboard.Config `mapstructure:"dashboard"`
	RateLimit ratelimit.Config `mapstructure:"ratelimit"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values, e.g.
// MYSQL__DSN for mysql.dsn, or the flat names bound in bindEnvVars.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/grbpwr-dashboard")
		v.AddConfigPath("/etc/grbpwr-dashboard")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	d := dashboard.DefaultConfig()
	v.SetDefault("dashboard.orders_limit", d.OrdersLimit)
	v.SetDefault("dashboard.products_limit", d.ProductsLimit)
	v.SetDefault("dashboard.forecast_days", d.ForecastDays)
	v.SetDefault("dashboard.low_stock_threshold", d.LowStockThreshold)
	v.SetDefault("dashboard.recent_orders", d.RecentOrders)
	v.SetDefault("dashboard.top_products", d.TopProducts)
	v.SetDefault("dashboard.top_customers", d.TopCustomers)

	v.SetDefault("http.address", "0.0.0.0")
	v.SetDefault("http.port", "8081")
	v.SetDefault("auth.jwtttl", "24h")
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("ratelimit.max", 120)
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars(v *viper.Viper) error {
	binds := [][2]string{
		{"mysql.dsn", "MYSQL_DSN"},
		{"mysql.automigrate", "MYSQL_AUTOMIGRATE"},
		{"mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS"},
		{"mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS"},
		{"mysql.tls_ca_path", "MYSQL_TLS_CA_PATH"},

		{"logger.level", "LOG_LEVEL"},
		{"logger.add_source", "LOG_ADD_SOURCE"},

		{"http.port", "HTTP_PORT"},
		{"http.address", "HTTP_ADDRESS"},
		{"http.allowed_origins", "HTTP_ALLOWED_ORIGINS"},
		{"http.trust_proxy_headers", "HTTP_TRUST_PROXY_HEADERS"},

		{"auth.jwtsecret", "AUTH_JWT_SECRET"},
		{"auth.jwtttl", "AUTH_JWT_TTL"},

		{"dashboard.orders_limit", "DASHBOARD_ORDERS_LIMIT"},
		{"dashboard.products_limit", "DASHBOARD_PRODUCTS_LIMIT"},
		{"dashboard.forecast_days", "DASHBOARD_FORECAST_DAYS"},
		{"dashboard.low_stock_threshold", "DASHBOARD_LOW_STOCK_THRESHOLD"},

		{"ratelimit.window", "RATELIMIT_WINDOW"},
		{"ratelimit.max", "RATELIMIT_MAX"},
	}
	for _, b := range binds {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("can't bind env %s: %w", b[1], err)
		}
	}
	return nil
}
