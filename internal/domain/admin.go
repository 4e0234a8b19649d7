package domain

import "time"

// DefaultAdminUsername is the username of the single admin principal.
const DefaultAdminUsername = "admin"

// Admin is the principal allowed to modify records.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
