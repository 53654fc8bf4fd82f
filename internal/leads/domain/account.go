package domain

import "time"

// Account is a credential record. Accounts and users share the same ID so a
// token subject resolves directly to a user profile.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
