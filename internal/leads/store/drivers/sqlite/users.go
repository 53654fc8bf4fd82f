package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/domain"
	"github.com/consultbase/leadsvc/internal/leads/store"
)

type usersRepo struct {
	q querier
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, email, name, is_admin, fcm_token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.IsAdmin, mapStringNull(u.FCMToken), now, now,
	)
	return mapConflict(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, email, name, is_admin, fcm_token, created_at, updated_at
		FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, email, name, is_admin, fcm_token, created_at, updated_at
		FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, email, name, is_admin, fcm_token, created_at, updated_at
		FROM users WHERE is_admin = 1 ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, u)
	}
	return admins, rows.Err()
}

func (r *usersRepo) UpdatePushToken(ctx context.Context, userID string, token string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET fcm_token = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(token), time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *usersRepo) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET is_admin = ?, updated_at = ? WHERE id = ?`,
		isAdmin, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *usersRepo) UpdateName(ctx context.Context, userID string, name string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *usersRepo) ReassignID(ctx context.Context, fromID, toID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET id = ?, updated_at = ? WHERE id = ?`,
		toID, time.Now().UTC(), fromID,
	)
	if err != nil {
		return mapConflict(err)
	}
	return requireRowAffected(res)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u        domain.User
		fcmToken sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.IsAdmin, &fcmToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.FCMToken = mapNullString(fcmToken)
	return u, nil
}

// requireRowAffected maps zero-row updates to ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
