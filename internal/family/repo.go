package family

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
	Create(ctx context.Context, f *Family) error
	GetByID(ctx context.Context, id string) (*Family, error)
	List(ctx context.Context, f Filter) ([]Family, error)
	Update(ctx context.Context, f *Family) error
	Delete(ctx context.Context, id string) (bool, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
	InUse(ctx context.Context, id string) (bool, error)
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

func (r *GormRepo) Create(ctx context.Context, f *Family) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *GormRepo) GetByID(ctx context.Context, id string) (*Family, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var f Family
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product family %s not found", id)
		}
		return nil, err
	}
	return &f, nil
}

func (r *GormRepo) List(ctx context.Context, f Filter) ([]Family, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Order("name ASC")
	if s := strings.TrimSpace(f.Name); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	out := []Family{}
	return out, q.Find(&out).Error
}

func (r *GormRepo) Update(ctx context.Context, f *Family) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *GormRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Family{})
	return res.RowsAffected > 0, res.Error
}

func (r *GormRepo) CategoryExists(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Table("categories").Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *GormRepo) InUse(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Table("products").Where("product_family_id = ?", id).Count(&n).Error
	return n > 0, err
}
