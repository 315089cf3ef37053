package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRole string

const (
	RoleAdmin     UserRole = "Admin"
	RoleDonor     UserRole = "Donor"
	RoleRecipient UserRole = "Recipient"
	RoleLogistics UserRole = "Logistics"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDonor, RoleRecipient, RoleLogistics:
		return true
	default:
		return false
	}
}

type CreateUserInput struct {
	Name     string   `json:"name" validate:"required,min=2"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Role     UserRole `json:"role" validate:"required,oneof=Admin Donor Recipient Logistics"`
}

// LoginInput carries the full credential triple: a login only succeeds when
// email, password and the selected role all match the stored user.
type LoginInput struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Role     UserRole `json:"role" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
}
