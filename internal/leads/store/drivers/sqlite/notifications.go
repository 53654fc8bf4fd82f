package sqlite

import (
	"context"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/domain"
)

type notificationsRepo struct {
	q querier
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, title, body, type, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.UserID, n.Title, n.Body, n.Type, n.IsRead, createdAt,
	)
	return err
}

func (r *notificationsRepo) GetNotificationByID(ctx context.Context, id string) (domain.Notification, error) {
	var n domain.Notification
	err := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, title, body, type, is_read, created_at
		FROM notifications WHERE id = ?`, id,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Type, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return domain.Notification{}, mapNotFound(err)
	}
	return n, nil
}

func (r *notificationsRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, title, body, type, is_read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationsRepo) MarkRead(ctx context.Context, notificationID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE notifications SET is_read = 1 WHERE id = ?`, notificationID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
