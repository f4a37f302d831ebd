package paymentmethod

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
	Create(ctx context.Context, m *Method) error
	GetByID(ctx context.Context, id uint) (*Method, error)
	List(ctx context.Context, f Filter) ([]Method, error)
	Update(ctx context.Context, m *Method) error
	Delete(ctx context.Context, id uint) (bool, error)
	InUse(ctx context.Context, id uint) (bool, error)
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

func (r *GormRepo) Create(ctx context.Context, m *Method) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *GormRepo) GetByID(ctx context.Context, id uint) (*Method, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var m Method
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment method %d not found", id)
		}
		return nil, err
	}
	return &m, nil
}

func like(s string) string { return "%" + strings.ToLower(strings.TrimSpace(s)) + "%" }

func (r *GormRepo) List(ctx context.Context, f Filter) ([]Method, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Order("name ASC")
	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}
	if strings.TrimSpace(f.Type) != "" {
		q = q.Where("LOWER(type) LIKE ?", like(f.Type))
	}
	if strings.TrimSpace(f.Name) != "" {
		q = q.Where("LOWER(name) LIKE ?", like(f.Name))
	}
	out := []Method{}
	return out, q.Find(&out).Error
}

func (r *GormRepo) Update(ctx context.Context, m *Method) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *GormRepo) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&Method{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *GormRepo) InUse(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Table("payments").Where("payment_method_id = ?", id).Count(&n).Error
	return n > 0, err
}
