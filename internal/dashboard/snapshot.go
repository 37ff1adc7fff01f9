package dashboard

import (
	"context"
	"fmt"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"golang.org/x/sync/errgroup"
)

type part uint8

const (
	partOrders part = 1 << iota
	partProducts
	partUsers

	partAll = partOrders | partProducts | partUsers
)

// snapshot fetches the requested record lists concurrently. The first failed
// fetch cancels the others and fails the whole snapshot.
func (s *Service) snapshot(ctx context.Context, parts part) (*entity.Snapshot, error) {
	snap := &entity.Snapshot{TakenAt: s.now()}

	g, ctx := errgroup.WithContext(ctx)

	if parts&partOrders != 0 {
		g.Go(func() error {
			var err error
			snap.Orders, err = s.repo.Orders().ListRecentOrders(ctx, s.c.OrdersLimit)
			if err != nil {
				return fmt.Errorf("can't list recent orders: %w", err)
			}
			return nil
		})
	}

	if parts&partProducts != 0 {
		g.Go(func() error {
			var err error
			snap.Products, err = s.repo.Products().ListProducts(ctx, s.c.ProductsLimit)
			if err != nil {
				return fmt.Errorf("can't list products: %w", err)
			}
			return nil
		})
	}

	if parts&partUsers != 0 {
		g.Go(func() error {
			var err error
			snap.Users, err = s.repo.Users().ListUsers(ctx)
			if err != nil {
				return fmt.Errorf("can't list users: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", gerr.ErrSnapshotUnavailable, err)
	}
	return snap, nil
}
