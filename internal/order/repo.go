package order

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MikeMC777/restau-management/internal/apperr"
	"github.com/MikeMC777/restau-management/internal/table"
)

const queryTimeout = 5 * time.Second

// Repository is the persistence port of the order flow. Transaction hands fn a
// Repository bound to one database transaction; fn's error rolls it back.
type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	UserExists(ctx context.Context, id uint) (bool, error)
	ClientExists(ctx context.Context, id uint) (bool, error)
	TableExists(ctx context.Context, id uint) (bool, error)
	ProductPrice(ctx context.Context, id uint) (decimal.Decimal, error)
	ClaimTable(ctx context.Context, id uint) error
	ReleaseTable(ctx context.Context, id uint) error
	HasPayment(ctx context.Context, orderID uint) (bool, error)

	Create(ctx context.Context, o *Order) error
	Save(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, f Filter) ([]Order, error)

	CreateItem(ctx context.Context, it *Item) error
	SaveItem(ctx context.Context, it *Item) error
	DeleteItem(ctx context.Context, id uint) (bool, error)
	DeleteItemsByOrder(ctx context.Context, orderID uint) error
	GetItem(ctx context.Context, id uint) (*Item, error)
	ListItems(ctx context.Context, f ItemFilter) ([]Item, error)
	SumSubtotals(ctx context.Context, orderID uint) (decimal.Decimal, error)
	ProductQuantity(ctx context.Context, productID uint) (int64, error)
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

func (r *GormRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{db: tx})
	})
}

func (r *GormRepo) exists(ctx context.Context, tableName string, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Table(tableName).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *GormRepo) UserExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, "users", id)
}

func (r *GormRepo) ClientExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, "clients", id)
}

func (r *GormRepo) TableExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, "tables", id)
}

func (r *GormRepo) ProductPrice(ctx context.Context, id uint) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var row struct{ Price decimal.Decimal }
	res := r.db.WithContext(ctx).Table("products").Select("price").Where("id = ?", id).Limit(1).Scan(&row)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if res.RowsAffected == 0 {
		return decimal.Zero, apperr.NotFound("product %d not found", id)
	}
	return row.Price, nil
}

// ClaimTable marks the table occupied only if it is currently available, in a
// single conditional UPDATE.
func (r *GormRepo) ClaimTable(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&table.Table{}).
		Where("id = ? AND available = ?", id, true).
		Update("available", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var t table.Table
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("table %d not found", id)
		}
		return err
	}
	return apperr.Conflict("table %d is already occupied", t.Number)
}

func (r *GormRepo) ReleaseTable(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Model(&table.Table{}).Where("id = ?", id).Update("available", true).Error
}

func (r *GormRepo) HasPayment(ctx context.Context, orderID uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Table("payments").Where("order_id = ?", orderID).Count(&n).Error
	return n > 0, err
}

func (r *GormRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *GormRepo) Save(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *GormRepo) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Delete(&Order{}, id).Error
}

func (r *GormRepo) GetByID(ctx context.Context, id uint) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var o Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order %d not found", id)
		}
		return nil, err
	}
	return &o, nil
}

func (r *GormRepo) List(ctx context.Context, f Filter) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.ClientID != 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.TableID != 0 {
		q = q.Where("table_id = ?", f.TableID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.UTC())
	}
	out := []Order{}
	return out, q.Find(&out).Error
}

func (r *GormRepo) CreateItem(ctx context.Context, it *Item) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *GormRepo) SaveItem(ctx context.Context, it *Item) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *GormRepo) DeleteItem(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&Item{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *GormRepo) DeleteItemsByOrder(ctx context.Context, orderID uint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&Item{}).Error
}

func (r *GormRepo) GetItem(ctx context.Context, id uint) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var it Item
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order item %d not found", id)
		}
		return nil, err
	}
	return &it, nil
}

func (r *GormRepo) ListItems(ctx context.Context, f ItemFilter) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Order("id ASC")
	if f.OrderID != 0 {
		q = q.Where("order_id = ?", f.OrderID)
	}
	if f.ProductID != 0 {
		q = q.Where("product_id = ?", f.ProductID)
	}
	out := []Item{}
	return out, q.Find(&out).Error
}

// SumSubtotals adds the stored subtotals in decimal arithmetic.
func (r *GormRepo) SumSubtotals(ctx context.Context, orderID uint) (decimal.Decimal, error) {
	items, err := r.ListItems(ctx, ItemFilter{OrderID: orderID})
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total, nil
}

func (r *GormRepo) ProductQuantity(ctx context.Context, productID uint) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&Item{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}
