package leads_test

import (
	"strings"
	"testing"

	"github.com/consultbase/leadsvc/pkg/leadsdk"
	"github.com/stretchr/testify/require"
)

// TestConsultationLeadFlow walks the full lead lifecycle: a user books a
// consultation, a lead is recorded for it, the admin is notified, and the
// admin confirms the consultation which notifies the user.
func TestConsultationLeadFlow(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)
	adminSession, _ := provisionAdmin(t, client)
	userSession, userID := registerUser(t, client, userEmail, userName, userPassword)

	consultationID := bookConsultation(t, userSession, "Visa options")

	// Booking produces a lead which notifies the admin
	notif := findNotification(t, adminSession, "new_lead")
	require.Equal(t, "New Lead Created", notif.Title)
	require.Contains(t, notif.Body, "New lead from "+userName)
	require.Contains(t, notif.Body, "consultation booking")

	// The client-invoked path lands on the same lead within the dedup window
	lead, err := userSession.CreateLeadForConsultation(t.Context(), leadsdk.CreateLeadRequest{
		ConsultationID: consultationID,
		UserID:         userID,
	})
	require.NoError(t, err)
	require.True(t, lead.Success)
	require.NotEmpty(t, lead.LeadID)
	require.True(t, lead.AlreadyExists, "Callable should reuse the booking's lead")
	require.Contains(t, notif.Body, lead.LeadID[:8])

	// The admin confirms the consultation
	confirm, err := adminSession.ConfirmConsultation(t.Context(), consultationID)
	require.NoError(t, err)
	require.True(t, confirm.Success)

	// The user is notified about the confirmation
	userNotif := findNotification(t, userSession, "consultation_confirmed")
	require.NotEmpty(t, userNotif.Title)
	require.Equal(t, userID, userNotif.UserID)
}

// TestLeadDeduplication verifies a second lead for the same user shortly
// after the first reuses the existing record.
func TestLeadDeduplication(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)
	userSession, userID := registerUser(t, client, userEmail, userName, userPassword)

	consultationID := bookConsultation(t, userSession, "Visa options")

	// The booking trigger may already have produced a lead, so only the
	// second call's outcome is deterministic.
	first, err := userSession.CreateLeadForConsultation(t.Context(), leadsdk.CreateLeadRequest{
		ConsultationID: consultationID,
		UserID:         userID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.LeadID)

	second, err := userSession.CreateLeadForConsultation(t.Context(), leadsdk.CreateLeadRequest{
		ConsultationID: consultationID,
		UserID:         userID,
	})
	require.NoError(t, err)
	require.True(t, second.AlreadyExists, "Second lead should be deduplicated")
	require.Equal(t, first.LeadID, second.LeadID, "Should return the existing lead")
}

// TestLeadOwnershipChecks verifies the ownership rules on lead creation.
func TestLeadOwnershipChecks(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)
	userSession, userID := registerUser(t, client, userEmail, userName, userPassword)
	otherSession, otherID := registerUser(t, client, "mallory@example.com", "Mallory", "Other123!")

	consultationID := bookConsultation(t, userSession, "Visa options")

	// Another user cannot create a lead for someone else's consultation
	_, err := otherSession.CreateLeadForConsultation(t.Context(), leadsdk.CreateLeadRequest{
		ConsultationID: consultationID,
		UserID:         otherID,
	})
	assertAPIError(t, err, leadsdk.ErrorCodePermissionDenied, "Lead for another user's consultation")

	// The owner cannot attribute the lead to a different user
	_, err = userSession.CreateLeadForConsultation(t.Context(), leadsdk.CreateLeadRequest{
		ConsultationID: consultationID,
		UserID:         otherID,
	})
	assertAPIError(t, err, leadsdk.ErrorCodeInvalidArgument, "Lead attributed to another user")

	// Unknown consultation
	_, err = userSession.CreateLeadForConsultation(t.Context(), leadsdk.CreateLeadRequest{
		ConsultationID: "does-not-exist",
		UserID:         userID,
	})
	assertAPIError(t, err, leadsdk.ErrorCodeNotFound, "Lead for unknown consultation")

	// Unauthenticated caller
	_, err = client.CreateLeadForConsultation(t.Context(), leadsdk.CreateLeadRequest{
		ConsultationID: consultationID,
		UserID:         userID,
	})
	assertAPIError(t, err, leadsdk.ErrorCodeUnauthenticated, "Lead without a token")
}

// TestShortlistShareFlow verifies sharing a shortlist creates a lead with a
// public share link and notifies the admin.
func TestShortlistShareFlow(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)
	adminSession, _ := provisionAdmin(t, client)
	userSession, userID := registerUser(t, client, userEmail, userName, userPassword)

	share, err := userSession.ShareShortlist(t.Context(), leadsdk.ShareShortlistRequest{
		UserID:         userID,
		OpportunityIDs: []string{"opp-1", "opp-2"},
	})
	require.NoError(t, err)
	require.True(t, share.Success)
	require.NotEmpty(t, share.LeadID)
	require.True(t, strings.HasPrefix(share.ShareLink, "https://consultbase.example.com/shortlist/"),
		"Share link should point at the public site, got: %s", share.ShareLink)
	require.Contains(t, share.ShareLink, share.LeadID)

	notif := findNotification(t, adminSession, "new_lead")
	require.Contains(t, notif.Body, "shared shortlist")
}

// TestConfirmConsultationIsAdminOnly verifies only admins can confirm and
// that confirming twice succeeds quietly without a second notification.
func TestConfirmConsultationIsAdminOnly(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)
	adminSession, _ := provisionAdmin(t, client)
	userSession, _ := registerUser(t, client, userEmail, userName, userPassword)

	consultationID := bookConsultation(t, userSession, "Visa options")

	_, err := userSession.ConfirmConsultation(t.Context(), consultationID)
	assertAPIError(t, err, leadsdk.ErrorCodePermissionDenied, "Non-admin confirmation")

	confirm, err := adminSession.ConfirmConsultation(t.Context(), consultationID)
	require.NoError(t, err)
	require.True(t, confirm.Success)

	// First confirmation notifies the owner
	findNotification(t, userSession, "consultation_confirmed")

	// Re-confirming succeeds without creating another notification
	confirm, err = adminSession.ConfirmConsultation(t.Context(), consultationID)
	require.NoError(t, err)
	require.True(t, confirm.Success)

	resp, err := userSession.ListNotifications(t.Context())
	require.NoError(t, err)

	count := 0
	for _, n := range resp.Notifications {
		if n.Type == "consultation_confirmed" {
			count++
		}
	}
	require.Equal(t, 1, count, "Re-confirmation should not notify again")
}
