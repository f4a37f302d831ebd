package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest is an order line. Price precedence: unit_price, then price,
// then the product's catalog price, then zero.
// swagger:model OrderItemRequest
type ItemRequest struct {
	ProductID *uint            `json:"product_id,omitempty" example:"3"`
	Quantity  int              `json:"quantity"             example:"2"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty" example:"9.50" swaggertype:"string"`
	Price     *decimal.Decimal `json:"price,omitempty"      swaggertype:"string"`
	Details   string           `json:"details,omitempty"    example:"no onions"`
}

// CreateRequest payload of creation.
// swagger:model CreateOrderRequest
type CreateRequest struct {
	UserID      uint          `json:"user_id"               example:"1"`
	ClientID    *uint         `json:"client_id,omitempty"   example:"7"`
	TableID     *uint         `json:"table_id,omitempty"    example:"4"`
	Status      string        `json:"status,omitempty"      example:"ON GOING"`
	Description string        `json:"description,omitempty" example:"window seat"`
	Items       []ItemRequest `json:"items"`
}

// ReplaceRequest overwrites description and status (when given) and all items.
// swagger:model ReplaceOrderRequest
type ReplaceRequest struct {
	Status      string        `json:"status,omitempty"`
	Description *string       `json:"description,omitempty"`
	Items       []ItemRequest `json:"items"`
}

// QuantityUpdate sets the quantity of one existing item.
// swagger:model QuantityUpdate
type QuantityUpdate struct {
	ItemID   uint `json:"order_item_id" example:"1"`
	Quantity int  `json:"quantity"      example:"3"`
}

// swagger:model AssignClientRequest
type AssignClientRequest struct {
	ClientID uint `json:"client_id" example:"7"`
}

// ItemCreateRequest is the standalone order-item payload.
// swagger:model OrderItemCreateRequest
type ItemCreateRequest struct {
	OrderID uint `json:"order_id" example:"12"`
	ItemRequest
}

// Response is the order projection returned by create, get and replace.
type Response struct {
	ID          uint            `json:"id"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	UserID      uint            `json:"user_id"`
	ClientID    *uint           `json:"client_id,omitempty"`
	TableID     *uint           `json:"table_id,omitempty"`
	Items       []Item          `json:"items"`
}

func newResponse(o *Order, items []Item) *Response {
	if items == nil {
		items = []Item{}
	}
	return &Response{
		ID:          o.ID,
		Description: o.Description,
		Status:      o.Status,
		Total:       o.Total,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		UserID:      o.UserID,
		ClientID:    o.ClientID,
		TableID:     o.TableID,
		Items:       items,
	}
}

// Event is the body published on order lifecycle routing keys.
type Event struct {
	OrderID uint            `json:"order_id"`
	Status  string          `json:"status"`
	Total   decimal.Decimal `json:"total_amount"`
	TableID *uint           `json:"table_id,omitempty"`
	At      time.Time       `json:"at"`
}
