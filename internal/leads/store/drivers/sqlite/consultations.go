package sqlite

import (
	"context"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/domain"
)

type consultationsRepo struct {
	q querier
}

func (r *consultationsRepo) CreateConsultation(ctx context.Context, c domain.Consultation) error {
	now := time.Now().UTC()
	status := c.Status
	if status == "" {
		status = domain.ConsultationStatusPending
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO consultations (id, user_id, topic, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Topic, status, now, now,
	)
	return err
}

func (r *consultationsRepo) GetConsultationByID(ctx context.Context, id string) (domain.Consultation, error) {
	var c domain.Consultation
	err := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, topic, status, created_at, updated_at
		FROM consultations WHERE id = ?`, id,
	).Scan(&c.ID, &c.UserID, &c.Topic, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Consultation{}, mapNotFound(err)
	}
	return c, nil
}

func (r *consultationsRepo) UpdateStatus(ctx context.Context, consultationID string, status string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE consultations SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), consultationID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
