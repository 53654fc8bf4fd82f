package leads_test

import (
	"testing"

	"github.com/consultbase/leadsvc/pkg/leadsdk"
	"github.com/stretchr/testify/require"
)

// TestSendNotificationToUser verifies an admin can push an ad-hoc
// notification and the target user sees it in their notification center.
func TestSendNotificationToUser(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)
	adminSession, _ := provisionAdmin(t, client)
	userSession, userID := registerUser(t, client, userEmail, userName, userPassword)

	send, err := adminSession.SendNotification(t.Context(), leadsdk.SendNotificationRequest{
		UserID: userID,
		Title:  "Welcome aboard",
		Body:   "Your consultant will be in touch shortly.",
	})
	require.NoError(t, err)
	require.True(t, send.Success)

	notif := findNotification(t, userSession, "admin_notification")
	require.Equal(t, "Welcome aboard", notif.Title)
	require.Equal(t, "Your consultant will be in touch shortly.", notif.Body)
	require.False(t, notif.IsRead)
}

// TestSendNotificationIsAdminOnly verifies non-admins cannot use the ad-hoc
// notification endpoint.
func TestSendNotificationIsAdminOnly(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)
	userSession, userID := registerUser(t, client, userEmail, userName, userPassword)

	_, err := userSession.SendNotification(t.Context(), leadsdk.SendNotificationRequest{
		UserID: userID,
		Title:  "Hello",
		Body:   "World",
	})
	assertAPIError(t, err, leadsdk.ErrorCodePermissionDenied, "Non-admin notification send")
}

// TestMarkNotificationRead verifies the read flag flips for the owner and
// that other users cannot touch the notification.
func TestMarkNotificationRead(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)
	adminSession, _ := provisionAdmin(t, client)
	userSession, userID := registerUser(t, client, userEmail, userName, userPassword)
	otherSession, _ := registerUser(t, client, "mallory@example.com", "Mallory", "Other123!")

	_, err := adminSession.SendNotification(t.Context(), leadsdk.SendNotificationRequest{
		UserID: userID,
		Title:  "Reminder",
		Body:   "Your consultation is tomorrow.",
	})
	require.NoError(t, err)

	notif := findNotification(t, userSession, "admin_notification")

	// Another user cannot mark it read
	_, err = otherSession.MarkNotificationRead(t.Context(), notif.ID)
	require.Error(t, err, "Marking another user's notification should fail")

	resp, err := userSession.MarkNotificationRead(t.Context(), notif.ID)
	require.NoError(t, err)
	require.True(t, resp.Success)

	list, err := userSession.ListNotifications(t.Context())
	require.NoError(t, err)
	for _, n := range list.Notifications {
		if n.ID == notif.ID {
			require.True(t, n.IsRead, "Notification should be marked read")
		}
	}
}

// TestRegisterPushToken verifies push token registration and clearing.
func TestRegisterPushToken(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)
	userSession, _ := registerUser(t, client, userEmail, userName, userPassword)

	resp, err := userSession.RegisterPushToken(t.Context(), leadsdk.PushTokenRequest{
		FCMToken: "device-token-abc123",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	// Clearing the token also succeeds
	resp, err = userSession.RegisterPushToken(t.Context(), leadsdk.PushTokenRequest{
		FCMToken: "",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	// Unauthenticated registration is rejected
	_, err = client.RegisterPushToken(t.Context(), leadsdk.PushTokenRequest{
		FCMToken: "device-token-abc123",
	})
	assertAPIError(t, err, leadsdk.ErrorCodeUnauthenticated, "Push token without a token")
}
