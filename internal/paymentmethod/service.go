package paymentmethod

import (
	"context"
	"strings"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func apply(m *Method, in Request) error {
	typ, name := strings.TrimSpace(in.Type), strings.TrimSpace(in.Name)
	if typ == "" || name == "" {
		return apperr.Validation("type and name are required")
	}
	if in.ProcessingFee.IsNegative() {
		return apperr.Validation("processing_fee must not be negative")
	}
	m.Type, m.Name = typ, name
	m.ProcessingFee = in.ProcessingFee.Round(2)
	if in.Active != nil {
		m.Active = *in.Active
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Request) (*Method, error) {
	m := &Method{Active: true}
	if err := apply(m, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*Method, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Method, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id uint, in Request) (*Method, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(m, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	used, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return apperr.Conflict("cannot delete payment method %d: payments reference it", id)
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("payment method %d not found", id)
	}
	return nil
}
