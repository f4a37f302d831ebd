package category

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

const queryTimeout = 5 * time.Second

type Filter struct {
	Name string // case-insensitive substring
}

type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	List(ctx context.Context, f Filter) ([]Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uint) (bool, error)
	InUse(ctx context.Context, id uint) (bool, error)
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

func (r *GormRepo) Create(ctx context.Context, c *Category) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) GetByID(ctx context.Context, id uint) (*Category, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var c Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category %d not found", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) List(ctx context.Context, f Filter) ([]Category, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Order("name ASC")
	if s := strings.TrimSpace(f.Name); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	out := []Category{}
	return out, q.Find(&out).Error
}

func (r *GormRepo) Update(ctx context.Context, c *Category) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *GormRepo) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&Category{}, id)
	return res.RowsAffected > 0, res.Error
}

// InUse reports whether any product or product family points at the category.
func (r *GormRepo) InUse(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	for _, table := range []string{"products", "product_families"} {
		var n int64
		if err := r.db.WithContext(ctx).Table(table).Where("category_id = ?", id).Count(&n).Error; err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}
