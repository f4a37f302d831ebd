package table

import (
	"context"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func validate(in Request) error {
	if in.Number <= 0 {
		return apperr.Validation("table_number must be a positive integer")
	}
	if in.Capacity <= 0 {
		return apperr.Validation("capacity must be a positive integer")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Request) (*Table, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	t := &Table{Number: in.Number, Capacity: in.Capacity, Available: true}
	if in.Available != nil {
		t.Available = *in.Available
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*Table, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByNumber(ctx context.Context, number int) (*Table, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Table, error) {
	return s.repo.List(ctx, f)
}

// Update refuses to touch a table that an ON GOING order is seated at.
func (s *Service) Update(ctx context.Context, id uint, in Request) (*Table, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	busy, err := s.repo.HasOngoingOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, apperr.Conflict("cannot edit table %d: it is currently linked to an active order", id)
	}
	t.Number, t.Capacity = in.Number, in.Capacity
	if in.Available != nil {
		t.Available = *in.Available
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	used, err := s.repo.HasOrders(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return apperr.Conflict("cannot delete table %d: it is linked to an existing order", id)
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("table %d not found", id)
	}
	return nil
}

// SetAvailability is the administrative override; it does not look at orders.
func (s *Service) SetAvailability(ctx context.Context, id uint, available bool) error {
	ok, err := s.repo.SetAvailability(ctx, id, available)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("table %d not found", id)
	}
	return nil
}
