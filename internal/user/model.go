package user

import "time"

// User is a staff member that owns orders.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"not null;size:80;uniqueIndex" json:"username"`
	Email        string    `gorm:"not null;size:160;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateRequest payload of creation.
// swagger:model CreateUserRequest
type CreateRequest struct {
	Username string `json:"username" example:"maria"`
	Email    string `json:"email"    example:"maria@restau.local"`
	Password string `json:"password" example:"s3cret!"`
}

// UpdateRequest payload of partial update; empty fields are left unchanged.
// swagger:model UpdateUserRequest
type UpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
