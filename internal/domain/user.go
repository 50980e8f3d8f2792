package domain

import (
	"time"
)

// User is a registered account holder. Accounts are immutable after
// registration; there are no update or delete operations.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
