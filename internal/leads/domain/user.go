package domain

import "time"

// User is the profile record notifications are addressed to. Its ID matches
// the account ID of the credential that owns it.
type User struct {
	ID        string
	Email     string
	Name      string
	IsAdmin   bool
	FCMToken  string // empty when the user has no registered device
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the best human-readable label for the user, falling
// back to the email address and finally a placeholder.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return "Unknown User"
}
