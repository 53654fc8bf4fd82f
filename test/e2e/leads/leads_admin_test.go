package leads_test

import (
	"testing"

	"github.com/consultbase/leadsvc/pkg/leadsdk"
	"github.com/stretchr/testify/require"
)

// TestAdminProvisioning verifies the admin account setup endpoint creates a
// working admin account.
func TestAdminProvisioning(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)

	resp, err := client.CreateAdminAccount(t.Context(), leadsdk.CreateAdminAccountRequest{
		Email:      adminEmail,
		Password:   adminPassword,
		Name:       adminName,
		SetupToken: adminSetupToken,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.UID)
	require.Equal(t, adminEmail, resp.Email)
	require.Equal(t, adminName, resp.Name)
	require.Equal(t, "Admin account created successfully", resp.Message)

	// The provisioned account must be able to log in
	token, err := client.Token(t.Context(), leadsdk.TokenRequest{
		Email:    adminEmail,
		Password: adminPassword,
	})
	require.NoError(t, err)
	assertTokenResponse(t, token)
}

// TestAdminProvisioningRepair verifies that provisioning an existing account
// is safe to re-run: the account is elevated and its password reset, not
// duplicated.
func TestAdminProvisioningRepair(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)

	first, err := client.CreateAdminAccount(t.Context(), leadsdk.CreateAdminAccountRequest{
		Email:      adminEmail,
		Password:   adminPassword,
		Name:       adminName,
		SetupToken: adminSetupToken,
	})
	require.NoError(t, err)
	require.Equal(t, "Admin account created successfully", first.Message)

	// Re-run with a new password
	second, err := client.CreateAdminAccount(t.Context(), leadsdk.CreateAdminAccountRequest{
		Email:      adminEmail,
		Password:   "NewAdmin456!",
		SetupToken: adminSetupToken,
	})
	require.NoError(t, err)
	require.Equal(t, first.UID, second.UID, "Repair should keep the same account")
	require.Equal(t, "Admin account updated successfully", second.Message)
	require.Equal(t, adminName, second.Name, "Repair should keep the existing name")

	// Old password no longer works, new one does
	_, err = client.Token(t.Context(), leadsdk.TokenRequest{
		Email:    adminEmail,
		Password: adminPassword,
	})
	assertAPIError(t, err, leadsdk.ErrorCodeUnauthenticated, "Old password after repair")

	token, err := client.Token(t.Context(), leadsdk.TokenRequest{
		Email:    adminEmail,
		Password: "NewAdmin456!",
	})
	require.NoError(t, err)
	assertTokenResponse(t, token)
}

// TestAdminProvisioningSetupTokenGate verifies the setup token is enforced.
func TestAdminProvisioningSetupTokenGate(t *testing.T) {
	baseURL, cleanup := setupLeadsContainer(t)
	defer cleanup()

	client := leadsdk.NewClient(baseURL)

	_, err := client.CreateAdminAccount(t.Context(), leadsdk.CreateAdminAccountRequest{
		Email:      adminEmail,
		Password:   adminPassword,
		SetupToken: "wrong-token",
	})
	assertAPIError(t, err, leadsdk.ErrorCodePermissionDenied, "Wrong setup token")

	_, err = client.CreateAdminAccount(t.Context(), leadsdk.CreateAdminAccountRequest{
		Email:    adminEmail,
		Password: adminPassword,
	})
	assertAPIError(t, err, leadsdk.ErrorCodePermissionDenied, "Missing setup token")
}
