package client

import (
	"context"
	"strings"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func validate(in Request) (first, last string, err error) {
	first, last = strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return "", "", apperr.Validation("first_name and last_name are required")
	}
	return first, last, nil
}

func (s *Service) Create(ctx context.Context, in Request) (*Client, error) {
	first, last, err := validate(in)
	if err != nil {
		return nil, err
	}
	c := &Client{FirstName: first, LastName: last}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx, Filter{})
}

func (s *Service) SearchFirstName(ctx context.Context, q string) ([]Client, error) {
	return s.repo.List(ctx, Filter{FirstName: q})
}

func (s *Service) SearchLastName(ctx context.Context, q string) ([]Client, error) {
	return s.repo.List(ctx, Filter{LastName: q})
}

// SearchFullName matches both names exactly, ignoring case.
func (s *Service) SearchFullName(ctx context.Context, first, last string) ([]Client, error) {
	if strings.TrimSpace(first) == "" || strings.TrimSpace(last) == "" {
		return nil, apperr.Validation("firstName and lastName are required")
	}
	return s.repo.List(ctx, Filter{FirstName: first, LastName: last, Exact: true})
}

func (s *Service) Update(ctx context.Context, id uint, in Request) (*Client, error) {
	first, last, err := validate(in)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.FirstName, c.LastName = first, last
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	used, err := s.repo.HasOrders(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return apperr.Conflict("cannot delete client %d: orders reference it", id)
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("client %d not found", id)
	}
	return nil
}
