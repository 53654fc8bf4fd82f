package store

import (
	"context"
	"errors"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Accounts() Accounts
	Users() Users
	Consultations() Consultations
	Leads() Leads
	Notifications() Notifications

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount inserts a new credential record (id is provided via ULID).
	CreateAccount(ctx context.Context, a domain.Account) error

	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used during the password grant.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, accountID string, newHash string) error
}

type Users interface {
	// CreateUser inserts a new user profile (id matches the account id).
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListAdmins returns every user with the admin flag set.
	ListAdmins(ctx context.Context) ([]domain.User, error)

	// UpdatePushToken sets (or clears, when empty) the fcm_token and bumps
	// updated_at.
	UpdatePushToken(ctx context.Context, userID string, token string) error

	// SetAdmin flips the is_admin flag and bumps updated_at.
	SetAdmin(ctx context.Context, userID string, isAdmin bool) error

	// UpdateName sets the display name and bumps updated_at.
	UpdateName(ctx context.Context, userID string, name string) error

	// ReassignID moves a user profile onto a new id. The FK cascade carries
	// the profile's consultations, leads and notifications along. Used when
	// re-homing a profile stored under a stale id during admin repair.
	ReassignID(ctx context.Context, fromID, toID string) error
}

type Consultations interface {
	// CreateConsultation inserts a new consultation in pending status.
	CreateConsultation(ctx context.Context, c domain.Consultation) error

	// GetConsultationByID returns a consultation by id.
	GetConsultationByID(ctx context.Context, id string) (domain.Consultation, error)

	// UpdateStatus sets the status and bumps updated_at.
	UpdateStatus(ctx context.Context, consultationID string, status string) error
}

type Leads interface {
	// CreateLead inserts a new lead record.
	CreateLead(ctx context.Context, l domain.Lead) error

	// GetLeadByID returns a lead by id.
	GetLeadByID(ctx context.Context, id string) (domain.Lead, error)

	// FindRecentByUserAndSource returns the newest lead for the user and
	// source created at or after the cutoff. Used for duplicate suppression.
	FindRecentByUserAndSource(ctx context.Context, userID, source string, cutoff time.Time) (domain.Lead, error)

	// UpdateShareLink sets the share_link and bumps updated_at.
	UpdateShareLink(ctx context.Context, leadID string, shareLink string) error

	// AssignConsultant sets the consultant_id and bumps updated_at.
	AssignConsultant(ctx context.Context, leadID string, consultantID string) error
}

type Notifications interface {
	// CreateNotification inserts a new notification record.
	CreateNotification(ctx context.Context, n domain.Notification) error

	// GetNotificationByID returns a notification by id.
	GetNotificationByID(ctx context.Context, id string) (domain.Notification, error)

	// ListByUser returns a user's notifications, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)

	// MarkRead flips is_read for a notification.
	MarkRead(ctx context.Context, notificationID string) error
}
