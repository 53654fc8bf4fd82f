package domain

import "time"

// Lead sources.
const (
	LeadSourceConsultation = "consultation"
	LeadSourceShortlist    = "shortlist"
)

// LeadStatusNew is the status every lead starts in.
const LeadStatusNew = "new"

// Lead is a sales lead created when a user books a consultation or shares
// their shortlist.
type Lead struct {
	ID             string
	UserID         string
	Source         string
	Status         string
	ConsultationID string   // set when Source is consultation
	OpportunityIDs []string // set when Source is shortlist
	ShareLink      string   // set when Source is shortlist
	ConsultantID   string   // empty until a consultant is assigned
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SourceDescription returns the phrase used in admin notifications for the
// lead's source.
func (l *Lead) SourceDescription() string {
	switch l.Source {
	case LeadSourceConsultation:
		return "consultation booking"
	case LeadSourceShortlist:
		return "shared shortlist"
	case "":
		return "unknown source"
	default:
		return l.Source
	}
}

// ShortID returns the truncated lead ID used in notification bodies.
func (l *Lead) ShortID() string {
	if len(l.ID) <= 8 {
		return l.ID
	}
	return l.ID[:8]
}
