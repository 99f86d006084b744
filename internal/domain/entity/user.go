package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
)

// User is a system user (belongs to a Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	Role         string // admin, sales
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
