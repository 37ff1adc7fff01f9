package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

type productStore struct {
	*MYSQLStore
}

// Products returns an object implementing products interface
func (ms *MYSQLStore) Products() dependency.Products {
	return &productStore{
		MYSQLStore: ms,
	}
}

// ListProducts returns up to limit products, newest first.
func (ps *productStore) ListProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	query := `
		SELECT id, name, price, quantity, created_at
		FROM products
		ORDER BY created_at DESC, id
		LIMIT :limit`

	products, err := QueryListNamed[entity.Product](ctx, ps.db, query, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products, nil
}
