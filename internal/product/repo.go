package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

const queryTimeout = 5 * time.Second

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, f Filter) ([]Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) (bool, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
	FamilyExists(ctx context.Context, id string) (bool, error)
	InUse(ctx context.Context, id uint) (bool, error)
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

func (r *GormRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) GetByID(ctx context.Context, id uint) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product %d not found", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) List(ctx context.Context, f Filter) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Order("name ASC")
	if s := strings.TrimSpace(f.Name); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.FamilyID != "" {
		q = q.Where("product_family_id = ?", f.FamilyID)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	out := []Product{}
	return out, q.Find(&out).Error
}

func (r *GormRepo) Update(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GormRepo) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&Product{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *GormRepo) count(ctx context.Context, table, where string, arg any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Table(table).Where(where, arg).Count(&n).Error
	return n, err
}

func (r *GormRepo) CategoryExists(ctx context.Context, id uint) (bool, error) {
	n, err := r.count(ctx, "categories", "id = ?", id)
	return n > 0, err
}

func (r *GormRepo) FamilyExists(ctx context.Context, id string) (bool, error) {
	n, err := r.count(ctx, "product_families", "id = ?", id)
	return n > 0, err
}

// InUse reports whether an order item still references the product.
func (r *GormRepo) InUse(ctx context.Context, id uint) (bool, error) {
	n, err := r.count(ctx, "order_items", "product_id = ?", id)
	return n > 0, err
}
