package paymentmethod

import (
	"time"

	"github.com/shopspring/decimal"
)

type Method struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Type          string          `gorm:"not null;size:60" json:"type"`
	Name          string          `gorm:"not null;size:120" json:"name"`
	Active        bool            `gorm:"not null" json:"active"`
	ProcessingFee decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"processing_fee"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Method) TableName() string { return "payment_methods" }

// Request is the create/update payload. Active defaults to true.
// swagger:model PaymentMethodRequest
type Request struct {
	Type          string          `json:"type"           example:"CARD"`
	Name          string          `json:"name"           example:"Visa"`
	Active        *bool           `json:"active,omitempty"`
	ProcessingFee decimal.Decimal `json:"processing_fee" example:"1.50" swaggertype:"string"`
}

type Filter struct {
	Active *bool
	Type   string // case-insensitive substring
	Name   string // case-insensitive substring
}
