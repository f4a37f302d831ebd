package order

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusOngoing   = "ON GOING"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

func knownStatus(s string) bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order is a ticket opened by a staff user, optionally for a client and a table.
// Total always equals the sum of its items' subtotals.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Status      string          `gorm:"not null;size:20;index" json:"status"`
	Total       decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	ClientID    *uint           `gorm:"index" json:"client_id"`
	TableID     *uint           `gorm:"index" json:"table_id"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Item is one order line. Subtotal = UnitPrice × Quantity.
type Item struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID *uint           `gorm:"index" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Details   string          `gorm:"type:text" json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Item) TableName() string { return "order_items" }

func subtotal(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty))).Round(2)
}

// Filter selects orders; zero fields are ignored. From is inclusive, To exclusive.
type Filter struct {
	Status   string
	UserID   uint
	ClientID uint
	TableID  uint
	From     *time.Time
	To       *time.Time
}

type ItemFilter struct {
	OrderID   uint
	ProductID uint
}
