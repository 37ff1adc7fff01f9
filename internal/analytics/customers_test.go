package analytics

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopCustomers(t *testing.T) {
	t.Run("bigger spender ranks first", func(t *testing.T) {
		users := []entity.User{testUser("a", daysAgo(90)), testUser("b", daysAgo(90))}
		orders := []entity.Order{
			testOrder("o1", "a", 200, entity.OrderStatusPaid, daysAgo(10)),
			testOrder("o2", "a", 300, entity.OrderStatusDelivered, daysAgo(3)),
			testOrder("o3", "b", 900, entity.OrderStatusPaid, daysAgo(20)),
		}

		top := TopCustomers(orders, users, 5)
		require.Len(t, top, 2)
		assert.Equal(t, "b", top[0].UserID)
		assert.Equal(t, 1, top[0].OrderCount)
		assert.Equal(t, "900", top[0].TotalSpent.String())

		assert.Equal(t, "a", top[1].UserID)
		assert.Equal(t, 2, top[1].OrderCount)
		assert.Equal(t, "500", top[1].TotalSpent.String())
		require.NotNil(t, top[1].LastOrderDate)
		assert.Equal(t, daysAgo(3), *top[1].LastOrderDate)
	})

	t.Run("guests unknown users and idle users are left out", func(t *testing.T) {
		users := []entity.User{testUser("a", daysAgo(90)), testUser("idle", daysAgo(90))}
		orders := []entity.Order{
			testOrder("o1", "", 10_000, entity.OrderStatusPaid, daysAgo(1)),
			testOrder("o2", "ghost", 5_000, entity.OrderStatusPaid, daysAgo(1)),
			testOrder("o3", "a", 10, entity.OrderStatusPending, daysAgo(1)),
		}

		top := TopCustomers(orders, users, 5)
		require.Len(t, top, 1)
		assert.Equal(t, "a", top[0].UserID)
	})

	t.Run("ties keep user order", func(t *testing.T) {
		users := []entity.User{testUser("x", daysAgo(9)), testUser("y", daysAgo(9)), testUser("z", daysAgo(9))}
		orders := []entity.Order{
			testOrder("o1", "z", 100, entity.OrderStatusPaid, daysAgo(1)),
			testOrder("o2", "y", 100, entity.OrderStatusPaid, daysAgo(2)),
			testOrder("o3", "x", 100, entity.OrderStatusPaid, daysAgo(3)),
		}

		top := TopCustomers(orders, users, 5)
		ids := make([]string, 0, len(top))
		for _, cs := range top {
			ids = append(ids, cs.UserID)
		}
		assert.Equal(t, []string{"x", "y", "z"}, ids)
	})

	t.Run("limited and sorted", func(t *testing.T) {
		var users []entity.User
		var orders []entity.Order
		for i := 0; i < 8; i++ {
			id := fmt.Sprintf("u%d", i)
			users = append(users, testUser(id, daysAgo(40)))
			orders = append(orders, testOrder("o"+id, id, int64((i*37)%11+1)*100, entity.OrderStatusPaid, daysAgo(i)))
		}

		top := TopCustomers(orders, users, 5)
		require.Len(t, top, 5)
		for i := 1; i < len(top); i++ {
			assert.True(t, top[i-1].TotalSpent.GreaterThanOrEqual(top[i].TotalSpent))
		}
		for _, cs := range top {
			assert.Positive(t, cs.OrderCount)
		}
	})

	t.Run("display name fallback", func(t *testing.T) {
		users := []entity.User{{ID: "user-abcdef123", Email: "anon@example.com", Name: sql.NullString{}}}
		orders := []entity.Order{testOrder("o1", "user-abcdef123", 10, entity.OrderStatusPaid, daysAgo(1))}

		top := TopCustomers(orders, users, 5)
		require.Len(t, top, 1)
		assert.Equal(t, "Customer #DEF123", top[0].DisplayName)
		assert.Equal(t, "anon@example.com", top[0].Email)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, TopCustomers(nil, nil, 5))
	})
}

func TestCustomerInsights(t *testing.T) {
	users := []entity.User{
		testUser("u1", daysAgo(5)),
		testUser("u2", daysAgo(40)),
		testUser("u3", daysAgo(1)),
	}
	orders := []entity.Order{
		testOrder("o1", "u2", 10, entity.OrderStatusPaid, daysAgo(2)),
		testOrder("o2", "u2", 10, entity.OrderStatusPaid, daysAgo(35)),
		testOrder("o3", "u1", 10, entity.OrderStatusPaid, daysAgo(3)),
		testOrder("o4", "", 10, entity.OrderStatusPaid, daysAgo(3)),
		testOrder("o5", "", 10, entity.OrderStatusPaid, daysAgo(4)),
	}

	ci := CustomerInsights(orders, users, testNow)
	assert.Equal(t, 3, ci.TotalCustomers)
	assert.Equal(t, 2, ci.NewCustomers)
	assert.Equal(t, 1, ci.ReturningCustomers)
	assert.InDelta(t, 66.6667, ci.CustomerGrowth, 1e-3)

	assert.Equal(t, entity.CustomerInsights{}, CustomerInsights(orders, nil, testNow))
}
