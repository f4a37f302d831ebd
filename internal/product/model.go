package product

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"not null;size:160" json:"name"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL         string          `gorm:"size:500" json:"image_url,omitempty"`
	ThumbnailURL     string          `gorm:"size:500" json:"thumbnail_url,omitempty"`
	OriginalFilename string          `json:"original_filename,omitempty"`
	FileSize         int64           `json:"file_size,omitempty"`
	ContentType      string          `json:"content_type,omitempty"`
	Notes            string          `gorm:"type:text" json:"notes,omitempty"`
	CategoryID       *uint           `gorm:"index" json:"category_id"`
	FamilyID         *string         `gorm:"column:product_family_id;size:36;index" json:"product_family_id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Request is accepted both as multipart form (with an optional "image" part)
// and as JSON. Price may be sent as a JSON number or string.
// swagger:model ProductRequest
type Request struct {
	Name        string      `form:"name"            json:"name"              example:"Margherita"`
	Description string      `form:"description"     json:"description"       example:"Tomato, mozzarella, basil"`
	Price       json.Number `form:"price"           json:"price"             example:"9.50" swaggertype:"string"`
	CategoryID  *uint       `form:"categoryId"      json:"category_id"       example:"1"`
	FamilyID    string      `form:"productFamilyId" json:"product_family_id" example:"0b9e9a4e-3c2f-4f7e-9d8a-1f2e3d4c5b6a"`
	Notes       string      `form:"notes"           json:"notes"`
}

// Filter selects products; zero fields are ignored. Price bounds are inclusive.
type Filter struct {
	Name       string
	CategoryID uint
	FamilyID   string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}
