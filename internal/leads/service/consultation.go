package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/consultbase/leadsvc/internal/leads/domain"
	"github.com/consultbase/leadsvc/internal/leads/events"
	"github.com/consultbase/leadsvc/internal/leads/store"
	"github.com/consultbase/leadsvc/pkg/idx"
	"github.com/consultbase/leadsvc/pkg/slogx"
)

type ConsultationService struct {
	Store  store.Store
	Bus    *events.Bus
	Notify *NotifyService
}

// Create books a consultation for the caller in pending status.
func (s *ConsultationService) Create(ctx context.Context, callerID, topic string) (domain.Consultation, error) {
	log := slogx.FromContext(ctx)

	consultation := domain.Consultation{
		ID:     idx.New().String(),
		UserID: callerID,
		Topic:  topic,
		Status: domain.ConsultationStatusPending,
	}
	if err := s.Store.Consultations().CreateConsultation(ctx, consultation); err != nil {
		log.Error("failed to create consultation", slog.Any("error", err))
		return domain.Consultation{}, err
	}

	log.Info("consultation created",
		slog.String("consultation_id", consultation.ID),
		slog.String("user_id", callerID),
	)

	s.Bus.Publish(ctx, events.Event{Topic: events.TopicConsultationCreated, Payload: consultation})

	return consultation, nil
}

// Confirm moves a consultation to confirmed and announces the status change.
// Confirming an already confirmed consultation is a quiet no-op. Only admins
// may confirm.
func (s *ConsultationService) Confirm(ctx context.Context, callerID, consultationID string) error {
	log := slogx.FromContext(ctx)

	// 1. Only admins confirm consultations.
	if err := s.Notify.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	// 2. The consultation must exist.
	consultation, err := s.Store.Consultations().GetConsultationByID(ctx, consultationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrConsultationNotFound
		}
		log.Error("failed to fetch consultation", slog.Any("error", err))
		return err
	}

	// 3. Idempotent: already confirmed means nothing to do and no event.
	if consultation.Status == domain.ConsultationStatusConfirmed {
		return nil
	}

	// 4. Update the status.
	if err := s.Store.Consultations().UpdateStatus(ctx, consultationID, domain.ConsultationStatusConfirmed); err != nil {
		log.Error("failed to confirm consultation", slog.Any("error", err))
		return err
	}

	log.Info("consultation confirmed", slog.String("consultation_id", consultationID))

	// 5. The owner's notification hangs off the status change event.
	s.Bus.Publish(ctx, events.Event{
		Topic: events.TopicConsultationUpdated,
		Payload: ConsultationStatusChange{
			ConsultationID: consultationID,
			UserID:         consultation.UserID,
			Before:         consultation.Status,
			After:          domain.ConsultationStatusConfirmed,
		},
	})

	return nil
}
