package order

import (
	"context"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

func (s *Service) ListItems(ctx context.Context, f ItemFilter) ([]Item, error) {
	return s.repo.ListItems(ctx, f)
}

func (s *Service) GetItem(ctx context.Context, id uint) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

// ProductQuantity is the number of units of a product across all order lines.
func (s *Service) ProductQuantity(ctx context.Context, productID uint) (int64, error) {
	return s.repo.ProductQuantity(ctx, productID)
}

// refreshTotal rewrites the order total from its stored lines.
func (s *Service) refreshTotal(ctx context.Context, tx Repository, o *Order) error {
	total, err := tx.SumSubtotals(ctx, o.ID)
	if err != nil {
		return err
	}
	o.Total = total
	o.UpdatedAt = s.now()
	return tx.Save(ctx, o)
}

// CreateItem adds a line to an existing order and refreshes its total.
func (s *Service) CreateItem(ctx context.Context, in ItemCreateRequest) (*Item, error) {
	if in.OrderID == 0 {
		return nil, apperr.Validation("order_id is required")
	}
	var it *Item
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		o, err := tx.GetByID(ctx, in.OrderID)
		if err != nil {
			return err
		}
		if it, err = buildItem(ctx, tx, o.ID, in.ItemRequest); err != nil {
			return err
		}
		if err := tx.CreateItem(ctx, it); err != nil {
			return err
		}
		return s.refreshTotal(ctx, tx, o)
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

// UpdateItem re-prices a line with the same precedence as creation. The line
// stays on its order.
func (s *Service) UpdateItem(ctx context.Context, id uint, in ItemCreateRequest) (*Item, error) {
	var it *Item
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		cur, err := tx.GetItem(ctx, id)
		if err != nil {
			return err
		}
		if in.OrderID != 0 && in.OrderID != cur.OrderID {
			return apperr.Validation("order item %d belongs to order %d", id, cur.OrderID)
		}
		o, err := tx.GetByID(ctx, cur.OrderID)
		if err != nil {
			return err
		}
		if it, err = buildItem(ctx, tx, cur.OrderID, in.ItemRequest); err != nil {
			return err
		}
		it.ID = cur.ID
		it.CreatedAt = cur.CreatedAt
		if err := tx.SaveItem(ctx, it); err != nil {
			return err
		}
		return s.refreshTotal(ctx, tx, o)
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) DeleteItem(ctx context.Context, id uint) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		it, err := tx.GetItem(ctx, id)
		if err != nil {
			return err
		}
		o, err := tx.GetByID(ctx, it.OrderID)
		if err != nil {
			return err
		}
		if _, err := tx.DeleteItem(ctx, id); err != nil {
			return err
		}
		return s.refreshTotal(ctx, tx, o)
	})
}
