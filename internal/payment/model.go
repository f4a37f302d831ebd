package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusRefunded  = "REFUNDED"
)

func knownStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// Payment settles one order. OrderID is unique.
type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Timestamp     time.Time       `gorm:"column:paid_at;not null;index" json:"timestamp"`
	Status        string          `gorm:"not null;size:20;index" json:"status"`
	TransactionID *string         `gorm:"size:120;uniqueIndex" json:"transaction_id,omitempty"`
	ReceiptNumber *string         `gorm:"size:60;uniqueIndex" json:"receipt_number,omitempty"`
	OrderID       uint            `gorm:"not null;uniqueIndex" json:"order_id"`
	MethodID      uint            `gorm:"column:payment_method_id;not null;index" json:"payment_method_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Request is the create/update payload. A missing amount defaults to the
// order's total; a missing status to PENDING.
// swagger:model PaymentRequest
type Request struct {
	OrderID       uint             `json:"order_id"          example:"12"`
	MethodID      uint             `json:"payment_method_id" example:"1"`
	Amount        *decimal.Decimal `json:"amount,omitempty"  example:"50.00" swaggertype:"string"`
	Status        string           `json:"status,omitempty"  example:"COMPLETED"`
	TransactionID string           `json:"transaction_id,omitempty"`
	ReceiptNumber string           `json:"receipt_number,omitempty"`
	Timestamp     *time.Time       `json:"timestamp,omitempty"`
}

// Filter selects payments; From is inclusive, To exclusive.
type Filter struct {
	OrderID  uint
	MethodID uint
	Status   string
	From     *time.Time
	To       *time.Time
}

// Revenue is the today-revenue projection.
type Revenue struct {
	Since  time.Time       `json:"since"`
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
}
