package admin

import (
	"net/http"
	"strings"

	v "github.com/asaskevich/govalidator"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
)

const (
	defaultPeriod    = entity.ChartPeriodDaily
	defaultDays      = 30
	maxDays          = 3650
	maxLimit         = 100
	maxThreshold     = 100_000
	defaultThreshold = entity.DefaultLowStockThreshold
)

// intParam reads an integer query parameter, falling back to def when absent.
// Non numeric or out of range values yield invalid.
func intParam(r *http.Request, name string, def, lo, hi int, invalid error) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	if !v.IsInt(raw) {
		return 0, invalid
	}
	n, err := v.ToInt(raw)
	if err != nil || !v.InRangeInt(n, lo, hi) {
		return 0, invalid
	}
	return int(n), nil
}

func periodParam(r *http.Request) (entity.ChartPeriod, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("period")))
	if raw == "" {
		return defaultPeriod, nil
	}
	if !v.IsIn(raw, entity.ChartPeriods...) {
		return "", gerr.ErrInvalidPeriod
	}
	return entity.ChartPeriod(raw), nil
}

type chartQuery struct {
	period entity.ChartPeriod
	days   int
}

func parseChartQuery(r *http.Request) (chartQuery, error) {
	period, err := periodParam(r)
	if err != nil {
		return chartQuery{}, err
	}
	days, err := intParam(r, "days", defaultDays, 1, maxDays, gerr.ErrInvalidDays)
	if err != nil {
		return chartQuery{}, err
	}
	return chartQuery{period: period, days: days}, nil
}

func parseLimit(r *http.Request, def int) (int, error) {
	return intParam(r, "limit", def, 1, maxLimit, gerr.ErrInvalidLimit)
}

func parseThreshold(r *http.Request) (int, error) {
	return intParam(r, "threshold", defaultThreshold, 0, maxThreshold, gerr.ErrInvalidThreshold)
}
