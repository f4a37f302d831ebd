package table

import "time"

// Table is a dining table. Available flips with the order lifecycle.
type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    int       `gorm:"not null;uniqueIndex" json:"table_number"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	Available bool      `gorm:"not null" json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Request is the create/update payload. Available defaults to true.
// swagger:model TableRequest
type Request struct {
	Number    int   `json:"table_number" example:"12"`
	Capacity  int   `json:"capacity"     example:"4"`
	Available *bool `json:"available,omitempty"`
}
