package service

import (
	"context"
	"testing"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/domain"
	"github.com/consultbase/leadsvc/internal/leads/store"
	"github.com/consultbase/leadsvc/pkg/idx"
	"github.com/consultbase/leadsvc/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newIdentityService(t *testing.T) *IdentityService {
	t.Helper()

	signer, err := jwtx.NewEphemeralSigner("test-key")
	require.NoError(t, err)

	return &IdentityService{
		Store:    newTestStore(t),
		Signer:   signer,
		Issuer:   "https://leads.test",
		TokenTTL: time.Hour,
	}
}

func TestRegisterAndMintToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newIdentityService(t)

	user, err := svc.Register(ctx, "Alice@Example.com", "hunter2secret", "Alice")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.False(t, user.IsAdmin)

	t.Run("valid credentials mint a verifiable token", func(t *testing.T) {
		token, ttl, err := svc.MintToken(ctx, "alice@example.com", "hunter2secret")
		require.NoError(t, err)
		require.Equal(t, time.Hour, ttl)

		claims, err := svc.Signer.Verifier("https://leads.test").Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, "alice@example.com", claims.Email)
		require.Equal(t, "Alice", claims.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.MintToken(ctx, "alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.MintToken(ctx, "nobody@example.com", "hunter2secret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice@example.com", "anotherpass", "Alice Again")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "pass", "")
		require.ErrorIs(t, err, ErrInvalidRegistration)

		_, err = svc.Register(ctx, "x@example.com", "", "")
		require.ErrorIs(t, err, ErrInvalidRegistration)
	})
}

func TestCreateOrRepairAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates a fresh admin", func(t *testing.T) {
		svc := newIdentityService(t)

		result, err := svc.CreateOrRepairAdmin(ctx, "admin@example.com", "adminpass123", "", "")
		require.NoError(t, err)
		require.Equal(t, "Admin account created successfully", result.Message)
		require.Equal(t, DefaultAdminName, result.Name)

		user, err := svc.Store.Users().GetUserByID(ctx, result.UserID)
		require.NoError(t, err)
		require.True(t, user.IsAdmin)

		// The new credential works immediately.
		_, _, err = svc.MintToken(ctx, "admin@example.com", "adminpass123")
		require.NoError(t, err)
	})

	t.Run("elevates an existing user", func(t *testing.T) {
		svc := newIdentityService(t)

		existing, err := svc.Register(ctx, "bob@example.com", "originalpass", "Bob")
		require.NoError(t, err)
		require.False(t, existing.IsAdmin)

		result, err := svc.CreateOrRepairAdmin(ctx, "bob@example.com", "newadminpass", "", "")
		require.NoError(t, err)
		require.Equal(t, existing.ID, result.UserID)
		require.Equal(t, "Admin account updated successfully", result.Message)
		require.Equal(t, "Bob", result.Name, "existing name is kept when none supplied")

		user, err := svc.Store.Users().GetUserByID(ctx, existing.ID)
		require.NoError(t, err)
		require.True(t, user.IsAdmin)

		// The password is reset as part of the repair.
		_, _, err = svc.MintToken(ctx, "bob@example.com", "newadminpass")
		require.NoError(t, err)
		_, _, err = svc.MintToken(ctx, "bob@example.com", "originalpass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("re-homes a profile stored under a stale id", func(t *testing.T) {
		svc := newIdentityService(t)

		stale := seedUser(t, svc.Store, "Carol", "carol@example.com", false, "carol-device")

		// The stale profile already owns rows in every dependent table.
		consultation := seedConsultation(t, svc.Store, stale.ID)
		lead := domain.Lead{
			ID:             idx.New().String(),
			UserID:         stale.ID,
			Source:         domain.LeadSourceConsultation,
			Status:         domain.LeadStatusNew,
			ConsultationID: consultation.ID,
		}
		require.NoError(t, svc.Store.Leads().CreateLead(ctx, lead))
		notification := domain.Notification{
			ID:     idx.New().String(),
			UserID: stale.ID,
			Title:  "Welcome",
			Body:   "Thanks for signing up",
			Type:   domain.NotificationTypeAdmin,
		}
		require.NoError(t, svc.Store.Notifications().CreateNotification(ctx, notification))

		result, err := svc.CreateOrRepairAdmin(ctx, "carol@example.com", "adminpass123", "", "")
		require.NoError(t, err)
		require.NotEqual(t, stale.ID, result.UserID)
		require.Equal(t, "Admin account updated successfully", result.Message)
		require.Equal(t, "Carol", result.Name)

		// The stale profile is gone; the re-homed one keeps its device token.
		_, err = svc.Store.Users().GetUserByID(ctx, stale.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		user, err := svc.Store.Users().GetUserByID(ctx, result.UserID)
		require.NoError(t, err)
		require.True(t, user.IsAdmin)
		require.Equal(t, "carol-device", user.FCMToken)

		// Dependent rows followed the profile onto the new id.
		rereadConsultation, err := svc.Store.Consultations().GetConsultationByID(ctx, consultation.ID)
		require.NoError(t, err)
		require.Equal(t, result.UserID, rereadConsultation.UserID)

		rereadLead, err := svc.Store.Leads().GetLeadByID(ctx, lead.ID)
		require.NoError(t, err)
		require.Equal(t, result.UserID, rereadLead.UserID)

		notifications, err := svc.Store.Notifications().ListByUser(ctx, result.UserID, 10)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		require.Equal(t, notification.ID, notifications[0].ID)

		_, _, err = svc.MintToken(ctx, "carol@example.com", "adminpass123")
		require.NoError(t, err)
	})

	t.Run("re-running is safe", func(t *testing.T) {
		svc := newIdentityService(t)

		first, err := svc.CreateOrRepairAdmin(ctx, "admin@example.com", "adminpass123", "Ops", "")
		require.NoError(t, err)

		second, err := svc.CreateOrRepairAdmin(ctx, "admin@example.com", "adminpass123", "Ops", "")
		require.NoError(t, err)
		require.Equal(t, first.UserID, second.UserID)
	})

	t.Run("setup token gate", func(t *testing.T) {
		svc := newIdentityService(t)
		svc.SetupToken = "secret-setup"

		_, err := svc.CreateOrRepairAdmin(ctx, "admin@example.com", "adminpass123", "", "wrong")
		require.ErrorIs(t, err, ErrSetupTokenMismatch)

		_, err = svc.CreateOrRepairAdmin(ctx, "admin@example.com", "adminpass123", "", "secret-setup")
		require.NoError(t, err)
	})
}
