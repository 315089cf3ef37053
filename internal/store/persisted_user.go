package store

import (
	"time"

	"github.com/google/uuid"

	"aidbridge/internal/domain"
)

// persistedUser is the storage shape of a user. domain.User hides the
// password hash from JSON so API responses and exports never carry it;
// the KV copy must keep it or logins break after a restart.
type persistedUser struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"password_hash"`
	Role         domain.UserRole `json:"role"`
	CreatedAt    time.Time       `json:"created_at"`
}

func usersToPersisted(users []domain.User) []persistedUser {
	out := make([]persistedUser, len(users))
	for i, u := range users {
		out[i] = persistedUser{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Role:         u.Role,
			CreatedAt:    u.CreatedAt,
		}
	}
	return out
}

func usersFromPersisted(stored []persistedUser) []domain.User {
	out := make([]domain.User, len(stored))
	for i, u := range stored {
		out[i] = domain.User{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Role:         u.Role,
			CreatedAt:    u.CreatedAt,
		}
	}
	return out
}
