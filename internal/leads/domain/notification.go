package domain

import "time"

// Notification types.
const (
	NotificationTypeNewLead               = "new_lead"
	NotificationTypeConsultationConfirmed = "consultation_confirmed"
	NotificationTypeConsultantAssigned    = "consultant_assigned"
	NotificationTypeAdmin                 = "admin_notification"
)

// Notification is a persisted notification center entry. Delivery via push
// is best effort; the stored record is the source of truth.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	Type      string
	IsRead    bool
	CreatedAt time.Time
}
