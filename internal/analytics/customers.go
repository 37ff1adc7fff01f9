package analytics

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

const newCustomerWindow = 30 * 24 * time.Hour

// TopCustomers ranks known users by lifetime spend in the order sample.
// Guest orders and orders of unknown users are ignored, users without orders
// are dropped, ties keep the order of users.
func TopCustomers(orders []entity.Order, users []entity.User, limit int) []entity.CustomerStat {
	stats := make([]entity.CustomerStat, len(users))
	byID := make(map[string]*entity.CustomerStat, len(users))
	for i, u := range users {
		stats[i] = entity.CustomerStat{
			UserID:      u.ID,
			DisplayName: u.DisplayName(),
			Email:       u.Email,
			TotalSpent:  decimal.Zero,
		}
		byID[u.ID] = &stats[i]
	}

	for _, o := range orders {
		if o.IsGuest() {
			continue
		}
		cs, ok := byID[o.UserID.String]
		if !ok {
			continue
		}
		cs.OrderCount++
		cs.TotalSpent = cs.TotalSpent.Add(o.Total)
		if cs.LastOrderDate == nil || o.CreatedAt.After(*cs.LastOrderDate) {
			placed := o.CreatedAt
			cs.LastOrderDate = &placed
		}
	}

	ranked := make([]entity.CustomerStat, 0, len(stats))
	for _, cs := range stats {
		if cs.OrderCount > 0 {
			ranked = append(ranked, cs)
		}
	}
	slices.SortStableFunc(ranked, func(a, b entity.CustomerStat) int {
		return b.TotalSpent.Cmp(a.TotalSpent)
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CustomerInsights counts customers, the ones who signed up in the last 30
// days and the ones with more than one order in the sample.
func CustomerInsights(orders []entity.Order, users []entity.User, now time.Time) entity.CustomerInsights {
	ci := entity.CustomerInsights{TotalCustomers: len(users)}

	since := now.Add(-newCustomerWindow)
	known := make(map[string]int, len(users))
	for _, u := range users {
		known[u.ID] = 0
		if !u.CreatedAt.Before(since) {
			ci.NewCustomers++
		}
	}
	for _, o := range orders {
		if o.IsGuest() {
			continue
		}
		if _, ok := known[o.UserID.String]; ok {
			known[o.UserID.String]++
		}
	}
	for _, n := range known {
		if n > 1 {
			ci.ReturningCustomers++
		}
	}
	if ci.TotalCustomers > 0 {
		ci.CustomerGrowth = float64(ci.NewCustomers) / float64(ci.TotalCustomers) * 100
	}
	return ci
}
