package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/domain"
	"github.com/consultbase/leadsvc/internal/leads/store"
)

type accountsRepo struct {
	q querier
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO accounts (id, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.PasswordHash, now, now,
	)
	return mapConflict(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at, updated_at
		FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at, updated_at
		FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, accountID string, newHash string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE accounts SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), accountID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

// mapConflict translates a UNIQUE constraint violation into ErrAlreadyExists.
func mapConflict(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}
