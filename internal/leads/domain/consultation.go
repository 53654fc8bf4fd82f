package domain

import "time"

// Consultation statuses.
const (
	ConsultationStatusPending   = "pending"
	ConsultationStatusConfirmed = "confirmed"
)

type Consultation struct {
	ID        string
	UserID    string
	Topic     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
