package family

import "time"

// Family groups products for the menu. IDs are random UUIDs assigned on create.
type Family struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Name             string    `gorm:"not null;size:160" json:"name"`
	Description      string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL         string    `gorm:"size:500" json:"image_url,omitempty"`
	ThumbnailURL     string    `gorm:"size:500" json:"thumbnail_url,omitempty"`
	ImageAltText     string    `json:"image_alt_text,omitempty"`
	OriginalFilename string    `json:"original_filename,omitempty"`
	FileSize         int64     `json:"file_size,omitempty"`
	ContentType      string    `json:"content_type,omitempty"`
	CategoryID       uint      `gorm:"not null;index" json:"category_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Family) TableName() string { return "product_families" }

// Request binds from multipart form or JSON. ImageURL is honoured only when
// no file is uploaded, for families whose image lives elsewhere.
// swagger:model FamilyRequest
type Request struct {
	Name         string `form:"name"         json:"name"           example:"Pizzas"`
	Description  string `form:"description"  json:"description"    example:"Wood-fired pizzas"`
	CategoryID   uint   `form:"categoryId"   json:"category_id"    example:"2"`
	ImageAltText string `form:"imageAltText" json:"image_alt_text" example:"A margherita pizza"`
	ImageURL     string `form:"-"            json:"image_url"`
}

type Filter struct {
	Name       string
	CategoryID uint
}
