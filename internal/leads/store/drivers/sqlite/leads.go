package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/domain"
)

type leadsRepo struct {
	q querier
}

func (r *leadsRepo) CreateLead(ctx context.Context, l domain.Lead) error {
	now := time.Now().UTC()
	status := l.Status
	if status == "" {
		status = domain.LeadStatusNew
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO leads (
			id, user_id, source, status,
			consultation_id, opportunity_ids, share_link, consultant_id,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.UserID, l.Source, status,
		mapStringNull(l.ConsultationID),
		mapStringNull(joinIDs(l.OpportunityIDs)),
		mapStringNull(l.ShareLink),
		mapStringNull(l.ConsultantID),
		now, now,
	)
	return err
}

func (r *leadsRepo) GetLeadByID(ctx context.Context, id string) (domain.Lead, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, source, status,
		       consultation_id, opportunity_ids, share_link, consultant_id,
		       created_at, updated_at
		FROM leads WHERE id = ?`, id)
	return scanLead(row)
}

func (r *leadsRepo) FindRecentByUserAndSource(ctx context.Context, userID, source string, cutoff time.Time) (domain.Lead, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, source, status,
		       consultation_id, opportunity_ids, share_link, consultant_id,
		       created_at, updated_at
		FROM leads
		WHERE user_id = ? AND source = ? AND created_at >= ?
		ORDER BY created_at DESC
		LIMIT 1`,
		userID, source, cutoff.UTC())
	return scanLead(row)
}

func (r *leadsRepo) UpdateShareLink(ctx context.Context, leadID string, shareLink string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE leads SET share_link = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(shareLink), time.Now().UTC(), leadID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *leadsRepo) AssignConsultant(ctx context.Context, leadID string, consultantID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE leads SET consultant_id = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(consultantID), time.Now().UTC(), leadID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanLead(row rowScanner) (domain.Lead, error) {
	var (
		l              domain.Lead
		consultationID sql.NullString
		opportunityIDs sql.NullString
		shareLink      sql.NullString
		consultantID   sql.NullString
	)
	err := row.Scan(
		&l.ID, &l.UserID, &l.Source, &l.Status,
		&consultationID, &opportunityIDs, &shareLink, &consultantID,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return domain.Lead{}, mapNotFound(err)
	}
	l.ConsultationID = mapNullString(consultationID)
	l.OpportunityIDs = splitAndFilter(mapNullString(opportunityIDs))
	l.ShareLink = mapNullString(shareLink)
	l.ConsultantID = mapNullString(consultantID)
	return l, nil
}
