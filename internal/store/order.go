package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

type orderStore struct {
	*MYSQLStore
}

// Orders returns an object implementing orders interface
func (ms *MYSQLStore) Orders() dependency.Orders {
	return &orderStore{
		MYSQLStore: ms,
	}
}

// ListRecentOrders returns up to limit orders, most recent first, with their items.
func (os *orderStore) ListRecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	query := `
		SELECT id, user_id, total, status, created_at
		FROM orders
		ORDER BY created_at DESC, id
		LIMIT :limit`

	orders, err := QueryListNamed[entity.Order](ctx, os.db, query, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get orders: %w", err)
	}
	if len(orders) == 0 {
		return []entity.Order{}, nil
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	items, err := getOrdersItems(ctx, os.db, ids...)
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func getOrdersItems(ctx context.Context, conn dependency.DB, orderIds ...string) (map[string][]entity.OrderItem, error) {
	if len(orderIds) == 0 {
		return map[string][]entity.OrderItem{}, nil
	}

	query := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id IN (:orderIds)
		ORDER BY order_id, id`

	items, err := QueryListNamed[entity.OrderItem](ctx, conn, query, map[string]any{
		"orderIds": orderIds,
	})
	if err != nil {
		return nil, err
	}

	byOrder := make(map[string][]entity.OrderItem, len(orderIds))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	return byOrder, nil
}
