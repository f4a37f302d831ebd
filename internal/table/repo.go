package table

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

const queryTimeout = 5 * time.Second

// same literal as order.StatusOngoing; order imports this package, not the reverse.
const ongoingStatus = "ON GOING"

type Filter struct {
	Available   *bool
	MinCapacity int
}

type Repository interface {
	Create(ctx context.Context, t *Table) error
	GetByID(ctx context.Context, id uint) (*Table, error)
	GetByNumber(ctx context.Context, number int) (*Table, error)
	List(ctx context.Context, f Filter) ([]Table, error)
	Update(ctx context.Context, t *Table) error
	Delete(ctx context.Context, id uint) (bool, error)
	SetAvailability(ctx context.Context, id uint, available bool) (bool, error)
	HasOrders(ctx context.Context, id uint) (bool, error)
	HasOngoingOrder(ctx context.Context, id uint) (bool, error)
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

func duplicate(err error, number int) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("table number %d already exists", number)
	}
	return err
}

func (r *GormRepo) Create(ctx context.Context, t *Table) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return duplicate(r.db.WithContext(ctx).Create(t).Error, t.Number)
}

func (r *GormRepo) GetByID(ctx context.Context, id uint) (*Table, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var t Table
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table %d not found", id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *GormRepo) GetByNumber(ctx context.Context, number int) (*Table, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var t Table
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table number %d not found", number)
		}
		return nil, err
	}
	return &t, nil
}

func (r *GormRepo) List(ctx context.Context, f Filter) ([]Table, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Order("number ASC")
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}
	if f.MinCapacity > 0 {
		q = q.Where("capacity >= ?", f.MinCapacity)
	}
	out := []Table{}
	return out, q.Find(&out).Error
}

func (r *GormRepo) Update(ctx context.Context, t *Table) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return duplicate(r.db.WithContext(ctx).Save(t).Error, t.Number)
}

func (r *GormRepo) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&Table{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *GormRepo) SetAvailability(ctx context.Context, id uint, available bool) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	if err := r.db.WithContext(ctx).Model(&Table{}).Where("id = ?", id).Count(&n).Error; err != nil || n == 0 {
		return false, err
	}
	err := r.db.WithContext(ctx).Model(&Table{}).Where("id = ?", id).Update("available", available).Error
	return true, err
}

func (r *GormRepo) HasOrders(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Table("orders").Where("table_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *GormRepo) HasOngoingOrder(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Table("orders").
		Where("table_id = ? AND status = ?", id, ongoingStatus).
		Count(&n).Error
	return n > 0, err
}
