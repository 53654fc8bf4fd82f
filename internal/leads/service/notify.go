package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/consultbase/leadsvc/internal/leads/domain"
	"github.com/consultbase/leadsvc/internal/leads/events"
	"github.com/consultbase/leadsvc/internal/leads/push"
	"github.com/consultbase/leadsvc/internal/leads/store"
	"github.com/consultbase/leadsvc/pkg/idx"
	"github.com/consultbase/leadsvc/pkg/slogx"
)

var (
	ErrPermissionDenied      = errors.New("caller lacks permission")
	ErrInvalidNotification   = errors.New("invalid notification request")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrNotificationOwnerOnly = errors.New("notification belongs to another user")
)

// ConsultationStatusChange is the payload for consultation.updated events.
type ConsultationStatusChange struct {
	ConsultationID string
	UserID         string
	Before         string
	After          string
}

type NotifyService struct {
	Store store.Store
	Push  push.Sender
}

// SendToUser persists a notification and best-effort pushes it to the user's
// device. A missing user is logged and ignored; a push failure never fails
// the stored notification.
func (s *NotifyService) SendToUser(ctx context.Context, userID, title, body, notifType string) error {
	log := slogx.FromContext(ctx)

	// 1. Resolve the target user. Absent users are a no-op, not an error,
	// so cleanup races between deletes and in-flight notifications stay quiet.
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("notification target does not exist", slog.String("user_id", userID))
			return nil
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	// 2. Persist the notification record. This is the source of truth.
	notification := domain.Notification{
		ID:     idx.New().String(),
		UserID: user.ID,
		Title:  title,
		Body:   body,
		Type:   notifType,
	}
	if err := s.Store.Notifications().CreateNotification(ctx, notification); err != nil {
		log.Error("failed to store notification",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return err
	}

	// 3. Push only when the user has a registered device. Delivery failures
	// are logged and swallowed.
	if user.FCMToken == "" {
		log.Debug("notification stored without push", slog.String("user_id", user.ID))
		return nil
	}

	err = s.Push.Send(ctx, push.Message{
		Token: user.FCMToken,
		Title: title,
		Body:  body,
		Data:  map[string]string{"type": notifType},
	})
	if err != nil {
		log.Warn("push delivery failed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	return nil
}

// SendAsAdmin delivers an ad-hoc notification on behalf of an administrator.
func (s *NotifyService) SendAsAdmin(ctx context.Context, callerID, userID, title, body, notifType string) error {
	// 1. Verify the caller is an admin.
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	// 2. Validate input.
	if userID == "" || title == "" || body == "" {
		return ErrInvalidNotification
	}
	if notifType == "" {
		notifType = domain.NotificationTypeAdmin
	}

	return s.SendToUser(ctx, userID, title, body, notifType)
}

// NotifyAllAdmins fans a notification out to every admin concurrently. One
// admin's failure never blocks or fails the others; the aggregate outcome is
// logged.
func (s *NotifyService) NotifyAllAdmins(ctx context.Context, title, body, notifType string) error {
	log := slogx.FromContext(ctx)

	admins, err := s.Store.Users().ListAdmins(ctx)
	if err != nil {
		log.Error("failed to list admins", slog.Any("error", err))
		return err
	}
	if len(admins) == 0 {
		log.Warn("no admin users to notify")
		return nil
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	for _, admin := range admins {
		wg.Add(1)
		go func(admin domain.User) {
			defer wg.Done()
			if err := s.SendToUser(ctx, admin.ID, title, body, notifType); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(admin)
	}
	wg.Wait()

	log.Info("admin fan-out complete",
		slog.Int("admins", len(admins)),
		slog.Int("failed", failed),
	)
	return nil
}

// HandleLeadCreated notifies all admins about a freshly created lead. It is
// subscribed to lead.created and must never propagate an error back into the
// write path, so every failure is logged and absorbed.
func (s *NotifyService) HandleLeadCreated(ctx context.Context, evt events.Event) error {
	log := slogx.FromContext(ctx)

	lead, ok := evt.Payload.(domain.Lead)
	if !ok {
		log.Error("unexpected payload on lead.created")
		return nil
	}

	// Resolve the acting user's display name, falling back to their email
	// and finally a placeholder.
	actor := "Unknown User"
	user, err := s.Store.Users().GetUserByID(ctx, lead.UserID)
	if err == nil {
		actor = user.DisplayName()
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Warn("failed to resolve lead actor", slog.Any("error", err))
	}

	body := fmt.Sprintf("New lead from %s (%s). Lead ID: %s...",
		actor, lead.SourceDescription(), lead.ShortID())

	if err := s.NotifyAllAdmins(ctx, "New Lead Created", body, domain.NotificationTypeNewLead); err != nil {
		log.Error("failed to notify admins of new lead",
			slog.String("lead_id", lead.ID),
			slog.Any("error", err),
		)
	}
	return nil
}

// HandleConsultationUpdated notifies the owner when their consultation
// transitions into confirmed. Other status changes are ignored.
func (s *NotifyService) HandleConsultationUpdated(ctx context.Context, evt events.Event) error {
	log := slogx.FromContext(ctx)

	change, ok := evt.Payload.(ConsultationStatusChange)
	if !ok {
		log.Error("unexpected payload on consultation.updated")
		return nil
	}

	// Only the transition into confirmed notifies; re-saving an already
	// confirmed consultation stays silent.
	if change.Before == domain.ConsultationStatusConfirmed ||
		change.After != domain.ConsultationStatusConfirmed {
		return nil
	}

	return s.SendToUser(ctx,
		change.UserID,
		"Consultation Confirmed",
		"Your consultation has been confirmed. We look forward to meeting you!",
		domain.NotificationTypeConsultationConfirmed,
	)
}

// ListForUser returns the caller's notifications, newest first.
func (s *NotifyService) ListForUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	return s.Store.Notifications().ListByUser(ctx, userID, limit)
}

// MarkRead marks one of the caller's notifications as read.
func (s *NotifyService) MarkRead(ctx context.Context, callerID, notificationID string) error {
	notification, err := s.Store.Notifications().GetNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if notification.UserID != callerID {
		return ErrNotificationOwnerOnly
	}
	return s.Store.Notifications().MarkRead(ctx, notificationID)
}

// requireAdmin returns ErrPermissionDenied unless the caller's profile has
// the admin flag.
func (s *NotifyService) requireAdmin(ctx context.Context, callerID string) error {
	log := slogx.FromContext(ctx)

	caller, err := s.Store.Users().GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPermissionDenied
		}
		log.Error("failed to fetch caller", slog.Any("error", err))
		return err
	}
	if !caller.IsAdmin {
		log.Warn("non-admin attempted privileged operation", slog.String("user_id", callerID))
		return ErrPermissionDenied
	}
	return nil
}
