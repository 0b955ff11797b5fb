package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a system user. The core never mutates
// it; it only tags analyses with the ID and resolves the display name.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
