package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one entry of the activity feed. The feed is ephemeral:
// it lives in the entity store, keeps only the most recent entries and is
// never persisted across restarts.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
