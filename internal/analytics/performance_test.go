package analytics

import (
	"math/rand"
	"testing"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestPerformanceIndex(t *testing.T) {
	t.Run("empty sample", func(t *testing.T) {
		assert.Equal(t, 0, PerformanceIndex(nil))
	})

	t.Run("revenue and order value", func(t *testing.T) {
		orders := []entity.Order{
			testOrder("o1", "u1", 5_000_000, entity.OrderStatusDelivered, daysAgo(1)),
		}
		// revenue 50, order value capped at 100, completion 0
		assert.Equal(t, 50, PerformanceIndex(orders))
	})

	t.Run("small shop", func(t *testing.T) {
		orders := []entity.Order{
			testOrder("o1", "u1", 100_000, entity.OrderStatusPaid, daysAgo(1)),
			testOrder("o2", "u2", 300_000, entity.OrderStatusPaid, daysAgo(2)),
		}
		// revenue 4 * 0.4 + order value 40 * 0.3
		assert.Equal(t, 14, PerformanceIndex(orders))
	})

	t.Run("always within bounds", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(42))
		for i := 0; i < 200; i++ {
			n := rnd.Intn(20) + 1
			orders := make([]entity.Order, 0, n)
			for j := 0; j < n; j++ {
				status := entity.OrderStatuses[rnd.Intn(len(entity.OrderStatuses))]
				if rnd.Intn(4) == 0 {
					status = statusCompleted
				}
				total := rnd.Int63n(50_000_000) - 1_000_000
				orders = append(orders, testOrder("o", "u", total, status, daysAgo(j)))
			}
			idx := PerformanceIndex(orders)
			assert.GreaterOrEqual(t, idx, 0)
			assert.LessOrEqual(t, idx, 100)
		}
	})
}

// The completion rate looks for a "completed" status that the order status
// enum does not contain, so fully delivered samples get no completion credit.
func TestPerformanceIndex_CompletedStatusMismatch(t *testing.T) {
	for _, s := range entity.OrderStatuses {
		assert.NotEqual(t, statusCompleted, s)
	}

	delivered := []entity.Order{
		testOrder("o1", "u1", 1_000, entity.OrderStatusDelivered, daysAgo(1)),
		testOrder("o2", "u1", 1_000, entity.OrderStatusDelivered, daysAgo(2)),
	}
	completed := []entity.Order{
		testOrder("o1", "u1", 1_000, statusCompleted, daysAgo(1)),
		testOrder("o2", "u1", 1_000, statusCompleted, daysAgo(2)),
	}

	assert.Equal(t, 0, PerformanceIndex(delivered))
	assert.Equal(t, 30, PerformanceIndex(completed))
}
