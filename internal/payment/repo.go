package payment

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

const queryTimeout = 5 * time.Second

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, p *Payment) error
	Save(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, id uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetBy(ctx context.Context, column string, value any) (*Payment, error)
	List(ctx context.Context, f Filter) ([]Payment, error)
	OrderTotal(ctx context.Context, orderID uint) (decimal.Decimal, error)
	MethodExists(ctx context.Context, id uint) (bool, error)
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

func (r *GormRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{db: tx})
	})
}

func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("payment already exists for this order, transaction or receipt")
	}
	return err
}

func (r *GormRepo) Create(ctx context.Context, p *Payment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return duplicate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *GormRepo) Save(ctx context.Context, p *Payment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return duplicate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *GormRepo) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&Payment{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *GormRepo) GetByID(ctx context.Context, id uint) (*Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment %d not found", id)
		}
		return nil, err
	}
	return &p, nil
}

var lookupColumns = map[string]bool{"order_id": true, "transaction_id": true, "receipt_number": true}

// GetBy finds the payment whose unique column equals value.
func (r *GormRepo) GetBy(ctx context.Context, column string, value any) (*Payment, error) {
	if !lookupColumns[column] {
		return nil, apperr.Internal(nil, "unsupported payment lookup "+column)
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p Payment
	if err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment with %s %v not found", column, value)
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) List(ctx context.Context, f Filter) ([]Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Order("paid_at DESC").Order("id DESC")
	if f.OrderID != 0 {
		q = q.Where("order_id = ?", f.OrderID)
	}
	if f.MethodID != 0 {
		q = q.Where("payment_method_id = ?", f.MethodID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("paid_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("paid_at < ?", f.To.UTC())
	}
	out := []Payment{}
	return out, q.Find(&out).Error
}

func (r *GormRepo) OrderTotal(ctx context.Context, orderID uint) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var row struct{ TotalAmount decimal.Decimal }
	res := r.db.WithContext(ctx).Table("orders").Select("total_amount").Where("id = ?", orderID).Limit(1).Scan(&row)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if res.RowsAffected == 0 {
		return decimal.Zero, apperr.NotFound("order %d not found", orderID)
	}
	return row.TotalAmount, nil
}

func (r *GormRepo) MethodExists(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Table("payment_methods").Where("id = ?", id).Count(&n).Error
	return n > 0, err
}
