package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/domain"
	"github.com/consultbase/leadsvc/internal/leads/events"
	"github.com/consultbase/leadsvc/internal/leads/store"
	"github.com/consultbase/leadsvc/pkg/idx"
	"github.com/consultbase/leadsvc/pkg/slogx"
)

var (
	ErrInvalidLeadRequest   = errors.New("invalid lead request")
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrNotConsultationOwner = errors.New("consultation belongs to another user")
	ErrUserMismatch         = errors.New("user id does not match caller")
	ErrLeadNotFound         = errors.New("lead not found")
)

// DefaultDedupWindow is how far back CreateForConsultation looks for an
// existing lead before creating another one.
const DefaultDedupWindow = 5 * time.Minute

type LeadService struct {
	Store  store.Store
	Bus    *events.Bus
	Notify *NotifyService

	// ShareLinkBase is the public site prefix for shortlist share links,
	// e.g. "https://consultbase.example.com".
	ShareLinkBase string

	// DedupWindow overrides DefaultDedupWindow when positive.
	DedupWindow time.Duration
}

func (s *LeadService) dedupWindow() time.Duration {
	if s.DedupWindow > 0 {
		return s.DedupWindow
	}
	return DefaultDedupWindow
}

// CreateForConsultation records a lead for a booked consultation. If the
// caller already produced a consultation lead within the dedup window, that
// lead is returned instead and alreadyExists is true.
func (s *LeadService) CreateForConsultation(ctx context.Context, callerID, consultationID, userID string) (domain.Lead, bool, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if consultationID == "" || userID == "" {
		return domain.Lead{}, false, ErrInvalidLeadRequest
	}

	// 2. The consultation must exist.
	consultation, err := s.Store.Consultations().GetConsultationByID(ctx, consultationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Lead{}, false, ErrConsultationNotFound
		}
		log.Error("failed to fetch consultation", slog.Any("error", err))
		return domain.Lead{}, false, err
	}

	// 3. Only the consultation's owner may create its lead.
	if consultation.UserID != callerID {
		log.Warn("lead creation for another user's consultation",
			slog.String("caller_id", callerID),
			slog.String("consultation_id", consultationID),
		)
		return domain.Lead{}, false, ErrNotConsultationOwner
	}

	// 4. The declared user must be the caller.
	if userID != callerID {
		return domain.Lead{}, false, ErrUserMismatch
	}

	// 5. Suppress duplicates from double-submits and retries. The check and
	// the insert are not atomic, so two truly concurrent requests can both
	// pass it; the window is best effort, not a uniqueness guarantee.
	cutoff := time.Now().Add(-s.dedupWindow())
	recent, err := s.Store.Leads().FindRecentByUserAndSource(ctx, callerID, domain.LeadSourceConsultation, cutoff)
	if err == nil {
		log.Info("recent consultation lead reused",
			slog.String("lead_id", recent.ID),
			slog.String("consultation_id", consultationID),
		)
		return recent, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for recent lead", slog.Any("error", err))
		return domain.Lead{}, false, err
	}

	// 6. Create the lead.
	lead := domain.Lead{
		ID:             idx.New().String(),
		UserID:         callerID,
		Source:         domain.LeadSourceConsultation,
		Status:         domain.LeadStatusNew,
		ConsultationID: consultationID,
	}
	if err := s.Store.Leads().CreateLead(ctx, lead); err != nil {
		log.Error("failed to create lead", slog.Any("error", err))
		return domain.Lead{}, false, err
	}

	log.Info("lead created",
		slog.String("lead_id", lead.ID),
		slog.String("source", lead.Source),
		slog.String("consultation_id", consultationID),
	)

	// 7. Admin notification happens off the lead.created event.
	s.Bus.Publish(ctx, events.Event{Topic: events.TopicLeadCreated, Payload: lead})

	return lead, false, nil
}

// HandleConsultationCreated records the lead for a freshly booked
// consultation. It is subscribed to consultation.created, which fires once
// per booking, so no duplicate pre-check is needed here.
func (s *LeadService) HandleConsultationCreated(ctx context.Context, evt events.Event) error {
	log := slogx.FromContext(ctx)

	consultation, ok := evt.Payload.(domain.Consultation)
	if !ok {
		log.Error("unexpected payload on consultation.created")
		return nil
	}

	lead := domain.Lead{
		ID:             idx.New().String(),
		UserID:         consultation.UserID,
		Source:         domain.LeadSourceConsultation,
		Status:         domain.LeadStatusNew,
		ConsultationID: consultation.ID,
	}
	if err := s.Store.Leads().CreateLead(ctx, lead); err != nil {
		log.Error("failed to create lead for consultation",
			slog.String("consultation_id", consultation.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("lead created",
		slog.String("lead_id", lead.ID),
		slog.String("source", lead.Source),
		slog.String("consultation_id", consultation.ID),
	)

	s.Bus.Publish(ctx, events.Event{Topic: events.TopicLeadCreated, Payload: lead})
	return nil
}

// ShareShortlist records a lead for a shared shortlist and returns it with
// its public share link populated. The lead belongs to the supplied user,
// which may differ from the caller (shares can be made on someone's behalf).
func (s *LeadService) ShareShortlist(ctx context.Context, callerID, userID string, opportunityIDs []string) (domain.Lead, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if userID == "" || len(opportunityIDs) == 0 {
		return domain.Lead{}, ErrInvalidLeadRequest
	}

	// 2. Create the lead with the opportunity selection.
	lead := domain.Lead{
		ID:             idx.New().String(),
		UserID:         userID,
		Source:         domain.LeadSourceShortlist,
		Status:         domain.LeadStatusNew,
		OpportunityIDs: opportunityIDs,
	}
	if err := s.Store.Leads().CreateLead(ctx, lead); err != nil {
		log.Error("failed to create shortlist lead", slog.Any("error", err))
		return domain.Lead{}, err
	}

	// 3. Derive and store the share link from the lead's own ID.
	lead.ShareLink = strings.TrimRight(s.ShareLinkBase, "/") + "/shortlist/" + lead.ID
	if err := s.Store.Leads().UpdateShareLink(ctx, lead.ID, lead.ShareLink); err != nil {
		log.Error("failed to store share link", slog.Any("error", err))
		return domain.Lead{}, err
	}

	log.Info("shortlist shared",
		slog.String("lead_id", lead.ID),
		slog.String("caller_id", callerID),
		slog.Int("opportunities", len(opportunityIDs)),
	)

	s.Bus.Publish(ctx, events.Event{Topic: events.TopicLeadCreated, Payload: lead})

	return lead, nil
}

// AssignConsultant sets the consultant on a lead and notifies the lead's
// owner. Only admins may assign.
func (s *LeadService) AssignConsultant(ctx context.Context, callerID, leadID, consultantID string) error {
	log := slogx.FromContext(ctx)

	// 1. Only admins assign consultants.
	if err := s.Notify.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	// 2. Validate input.
	if leadID == "" || consultantID == "" {
		return ErrInvalidLeadRequest
	}

	// 3. Update the lead.
	if err := s.Store.Leads().AssignConsultant(ctx, leadID, consultantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLeadNotFound
		}
		log.Error("failed to assign consultant", slog.Any("error", err))
		return err
	}

	// 4. Re-read so the notification goes to the lead's current owner.
	lead, err := s.Store.Leads().GetLeadByID(ctx, leadID)
	if err != nil {
		log.Error("failed to re-read lead after assignment", slog.Any("error", err))
		return err
	}

	log.Info("consultant assigned",
		slog.String("lead_id", leadID),
		slog.String("consultant_id", consultantID),
	)

	// 5. Tell the user. A notification failure does not undo the assignment.
	if err := s.Notify.SendToUser(ctx,
		lead.UserID,
		"Consultant Assigned",
		"A consultant has been assigned to assist you.",
		domain.NotificationTypeConsultantAssigned,
	); err != nil {
		log.Warn("failed to notify user of assignment",
			slog.String("lead_id", leadID),
			slog.Any("error", err),
		)
	}

	return nil
}
