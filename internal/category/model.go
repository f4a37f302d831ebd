package category

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:120" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Request is the create/update payload.
// swagger:model CategoryRequest
type Request struct {
	Name string `json:"name" example:"Desserts"`
}
