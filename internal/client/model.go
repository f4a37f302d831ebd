package client

import "time"

type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null;size:80" json:"first_name"`
	LastName  string    `gorm:"not null;size:80" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Request is the create/update payload.
// swagger:model ClientRequest
type Request struct {
	FirstName string `json:"first_name" example:"Amina"`
	LastName  string `json:"last_name"  example:"Benali"`
}
