package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/domain"
	"github.com/consultbase/leadsvc/internal/leads/store"
	"github.com/consultbase/leadsvc/pkg/cryptox"
	"github.com/consultbase/leadsvc/pkg/idx"
	"github.com/consultbase/leadsvc/pkg/jwtx"
	"github.com/consultbase/leadsvc/pkg/slogx"
)

var (
	ErrInvalidRegistration = errors.New("invalid registration request")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrSetupTokenMismatch  = errors.New("invalid setup token")
)

// DefaultAdminName is assigned when provisioning an admin without a name.
const DefaultAdminName = "Admin User"

type IdentityService struct {
	Store  store.Store
	Signer *jwtx.Signer

	Issuer   string
	TokenTTL time.Duration

	// SetupToken gates admin provisioning. Empty disables the check, which
	// is only acceptable in development.
	SetupToken string
}

// AdminProvisionResult reports what CreateOrRepairAdmin did.
type AdminProvisionResult struct {
	UserID  string
	Email   string
	Name    string
	Message string
}

// Register creates a credential and its user profile atomically. The account
// and user share one ULID so token subjects resolve straight to a profile.
func (s *IdentityService) Register(ctx context.Context, email, password, name string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidRegistration
	}

	// 2. Hash the password.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	id := idx.New().String()
	user := domain.User{
		ID:    id,
		Email: email,
		Name:  name,
	}

	// 3. Create account and user in one transaction.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, domain.Account{
			ID:           id,
			Email:        email,
			PasswordHash: hash,
		}); err != nil {
			return err
		}
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create account", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("account registered", slog.String("user_id", id))
	return user, nil
}

// MintToken performs a password grant and returns a signed access token.
func (s *IdentityService) MintToken(ctx context.Context, email, password string) (string, time.Duration, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", 0, ErrInvalidCredentials
	}

	// 1. Look up the account.
	account, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Hash anyway to keep timing consistent with the found path.
			_, _ = cryptox.HashPassword(password)
			return "", 0, ErrInvalidCredentials
		}
		log.Error("failed to fetch account", slog.Any("error", err))
		return "", 0, err
	}

	// 2. Verify the password.
	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		log.Warn("password grant failed", slog.String("account_id", account.ID))
		return "", 0, ErrInvalidCredentials
	}

	// 3. Pull the profile so the token carries the display name.
	user, err := s.Store.Users().GetUserByID(ctx, account.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to fetch user", slog.Any("error", err))
		return "", 0, err
	}

	// 4. Sign the access token.
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	claims := jwtx.NewAccessClaims(account.ID, account.Email, user.Name, s.Issuer, ttl, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return "", 0, err
	}

	return token, ttl, nil
}

// CreateOrRepairAdmin provisions an administrator account. If the email is
// new, a fresh account and admin user are created. If it already exists, the
// profile is elevated to admin and its email/name repaired, keeping the
// operation safe to re-run.
func (s *IdentityService) CreateOrRepairAdmin(ctx context.Context, email, password, name, setupToken string) (AdminProvisionResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Gate on the setup token when one is configured.
	if s.SetupToken != "" && setupToken != s.SetupToken {
		log.Warn("admin provisioning rejected: bad setup token")
		return AdminProvisionResult{}, ErrSetupTokenMismatch
	}

	// 2. Validate input.
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return AdminProvisionResult{}, ErrInvalidRegistration
	}
	if name == "" {
		name = DefaultAdminName
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return AdminProvisionResult{}, err
	}

	var result AdminProvisionResult

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 3. Reuse the existing account for this email if there is one.
		account, err := tx.Accounts().GetAccountByEmail(ctx, email)
		switch {
		case err == nil:
			// Existing account: reset the password so the operator regains access.
			if err := tx.Accounts().UpdatePasswordHash(ctx, account.ID, hash); err != nil {
				return err
			}
		case errors.Is(err, store.ErrNotFound):
			account = domain.Account{
				ID:           idx.New().String(),
				Email:        email,
				PasswordHash: hash,
			}
			if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
				return err
			}
		default:
			return err
		}

		// 4. Create or elevate the user profile.
		user, err := tx.Users().GetUserByID(ctx, account.ID)
		switch {
		case err == nil:
			if user.Name != "" && name == DefaultAdminName {
				name = user.Name
			}
			if err := tx.Users().SetAdmin(ctx, account.ID, true); err != nil {
				return err
			}
			if err := tx.Users().UpdateName(ctx, account.ID, name); err != nil {
				return err
			}
			result.Message = "Admin account updated successfully"
		case errors.Is(err, store.ErrNotFound):
			// A profile stored under a stale id for this email gets re-homed
			// onto the account id instead of duplicated. Moving the row keeps
			// its consultations, leads and notifications attached through the
			// FK cascade, and its device token with it.
			stale, lookupErr := tx.Users().GetUserByEmail(ctx, email)
			switch {
			case lookupErr == nil && stale.ID != account.ID:
				if stale.Name != "" && name == DefaultAdminName {
					name = stale.Name
				}
				if err := tx.Users().ReassignID(ctx, stale.ID, account.ID); err != nil {
					return err
				}
				if err := tx.Users().SetAdmin(ctx, account.ID, true); err != nil {
					return err
				}
				if err := tx.Users().UpdateName(ctx, account.ID, name); err != nil {
					return err
				}
				result.Message = "Admin account updated successfully"
			case lookupErr == nil || errors.Is(lookupErr, store.ErrNotFound):
				if err := tx.Users().CreateUser(ctx, domain.User{
					ID:      account.ID,
					Email:   email,
					Name:    name,
					IsAdmin: true,
				}); err != nil {
					return err
				}
				result.Message = "Admin account created successfully"
			default:
				return lookupErr
			}
		default:
			return err
		}

		result.UserID = account.ID
		result.Email = email
		result.Name = name
		return nil
	})
	if err != nil {
		log.Error("admin provisioning failed", slog.Any("error", err))
		return AdminProvisionResult{}, err
	}

	log.Info("admin account provisioned",
		slog.String("user_id", result.UserID),
		slog.String("email", result.Email),
	)
	return result, nil
}
