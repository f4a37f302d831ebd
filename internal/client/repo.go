package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

const queryTimeout = 5 * time.Second

// Filter fields are combined with AND. FirstName and LastName are substring
// matches unless Exact is set.
type Filter struct {
	FirstName string
	LastName  string
	Exact     bool
}

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uint) (*Client, error)
	List(ctx context.Context, f Filter) ([]Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uint) (bool, error)
	HasOrders(ctx context.Context, id uint) (bool, error)
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

func (r *GormRepo) Create(ctx context.Context, c *Client) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) GetByID(ctx context.Context, id uint) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var c Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("client %d not found", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) List(ctx context.Context, f Filter) ([]Client, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Order("last_name ASC, first_name ASC")
	q = match(q, "first_name", f.FirstName, f.Exact)
	q = match(q, "last_name", f.LastName, f.Exact)

	out := []Client{}
	return out, q.Find(&out).Error
}

func match(q *gorm.DB, col, val string, exact bool) *gorm.DB {
	val = strings.ToLower(strings.TrimSpace(val))
	if val == "" {
		return q
	}
	if exact {
		return q.Where("LOWER("+col+") = ?", val)
	}
	return q.Where("LOWER("+col+") LIKE ?", "%"+val+"%")
}

func (r *GormRepo) Update(ctx context.Context, c *Client) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *GormRepo) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&Client{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *GormRepo) HasOrders(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Table("orders").Where("client_id = ?", id).Count(&n).Error
	return n > 0, err
}
