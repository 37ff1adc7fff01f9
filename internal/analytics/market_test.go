package analytics

import (
	"testing"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestRevenueGrowth(t *testing.T) {
	tests := []struct {
		name   string
		orders []entity.Order
		want   float64
	}{
		{
			name: "growth over the previous window",
			orders: []entity.Order{
				testOrder("o1", "u1", 100, entity.OrderStatusPaid, daysAgo(5)),
				testOrder("o2", "u1", 50, entity.OrderStatusPending, daysAgo(29)),
				testOrder("o3", "u2", 100, entity.OrderStatusCancelled, daysAgo(45)),
			},
			want: 50,
		},
		{
			name: "decline",
			orders: []entity.Order{
				testOrder("o1", "u1", 25, entity.OrderStatusPaid, daysAgo(1)),
				testOrder("o2", "u1", 100, entity.OrderStatusPaid, daysAgo(59)),
			},
			want: -75,
		},
		{
			name: "no previous revenue",
			orders: []entity.Order{
				testOrder("o1", "u1", 100, entity.OrderStatusPaid, daysAgo(1)),
			},
			want: 0,
		},
		{
			name: "orders outside both windows are ignored",
			orders: []entity.Order{
				testOrder("o1", "u1", 100, entity.OrderStatusPaid, daysAgo(10)),
				testOrder("o2", "u1", 100, entity.OrderStatusPaid, daysAgo(40)),
				testOrder("o3", "u1", 1000, entity.OrderStatusPaid, daysAgo(61)),
				testOrder("o4", "u1", 1000, entity.OrderStatusPaid, testNow.AddDate(0, 0, 1)),
			},
			want: 0,
		},
		{
			name: "boundary day belongs to the current window",
			orders: []entity.Order{
				testOrder("o1", "u1", 300, entity.OrderStatusPaid, daysAgo(30)),
				testOrder("o2", "u1", 100, entity.OrderStatusPaid, daysAgo(60)),
			},
			want: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RevenueGrowth(tt.orders, testNow), 1e-9)
		})
	}
}

func TestEstimateMarket(t *testing.T) {
	t.Run("share within bounds", func(t *testing.T) {
		orders := []entity.Order{
			testOrder("o1", "u1", 60_000_000, entity.OrderStatusPaid, daysAgo(5)),
			testOrder("o2", "u1", 40_000_000, entity.OrderStatusPaid, daysAgo(40)),
		}

		mi := EstimateMarket(orders, testNow)
		assert.InDelta(t, 10.0, mi.MarketShare, 1e-9)
		assert.InDelta(t, 50.0, mi.GrowthRate, 1e-9)
		assert.Equal(t, 15.0, mi.TargetMarketShare)
		assert.Equal(t, 8, mi.CompetitorCount)
	})

	t.Run("share is clamped", func(t *testing.T) {
		small := []entity.Order{testOrder("o1", "u1", 1_000, entity.OrderStatusPaid, daysAgo(1))}
		assert.Equal(t, 5.0, EstimateMarket(small, testNow).MarketShare)

		big := []entity.Order{testOrder("o1", "u1", 500_000_000, entity.OrderStatusPaid, daysAgo(1))}
		assert.Equal(t, 20.0, EstimateMarket(big, testNow).MarketShare)

		assert.Equal(t, 5.0, EstimateMarket(nil, testNow).MarketShare)
	})

	t.Run("negative growth is reported as zero", func(t *testing.T) {
		orders := []entity.Order{
			testOrder("o1", "u1", 10, entity.OrderStatusPaid, daysAgo(1)),
			testOrder("o2", "u1", 100, entity.OrderStatusPaid, daysAgo(31)),
		}
		assert.Equal(t, 0.0, EstimateMarket(orders, testNow).GrowthRate)
	})
}
