package leads_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/consultbase/leadsvc/pkg/leadsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for leads service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "consultbase-leads-test:latest"

	adminSetupToken = "test-setup-token-12345"
	adminEmail      = "admin@example.com"
	adminName       = "Administrator"
	adminPassword   = "Admin123!"

	userEmail    = "jane@example.com"
	userName     = "Jane Citizen"
	userPassword = "User123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Leads Service Docker image...")

	// Build the Docker image once before all tests
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	// Run all tests
	exitCode := m.Run()

	// Clean up the Docker image after all tests complete
	fmt.Fprintf(os.Stdout, "Cleaning up Leads Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/leads/Dockerfile",
		"../../../")
	cmd.Dir = "." // Ensure we're in the test directory
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupLeadsContainer starts the leads service in a container and returns
// the base URL.
func setupLeadsContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"LEADS_ADMIN_SETUP_TOKEN": adminSetupToken,
			"LEADS_DATABASE_FILE":     "/leads.db",
			"LEADS_ISSUER":            "consultbase-leads",
			"LEADS_SHARE_LINK_BASE":   "https://consultbase.example.com",
			"ENV":                     "test",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
			// Increase rate limits for E2E tests to prevent test failures
			// Tests often make many rapid requests which would otherwise hit the strict production limits
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
			"RATELIMIT_LENIENT_REQUESTS":  "1000",
			"RATELIMIT_LENIENT_BURST":     "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	// Get the mapped port
	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupLeadsContainerWithDefaultRateLimits starts the leads service with
// DEFAULT rate limits. This is specifically for testing that rate limiting
// actually works. Most tests should use setupLeadsContainer() which has
// relaxed limits to prevent test failures.
func setupLeadsContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"LEADS_ADMIN_SETUP_TOKEN": adminSetupToken,
			"LEADS_DATABASE_FILE":     "/leads.db",
			"LEADS_ISSUER":            "consultbase-leads",
			"LEADS_SHARE_LINK_BASE":   "https://consultbase.example.com",
			"ENV":                     "test",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
			// NOTE: No rate limit overrides - using production defaults for rate limit testing
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	// Get the mapped port
	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// provisionAdmin creates the test admin account and returns an authenticated
// client for it.
func provisionAdmin(t *testing.T, client *leadsdk.Client) (*leadsdk.Client, string) {
	t.Helper()
	ctx := context.Background()

	resp, err := client.CreateAdminAccount(ctx, leadsdk.CreateAdminAccountRequest{
		Email:      adminEmail,
		Password:   adminPassword,
		Name:       adminName,
		SetupToken: adminSetupToken,
	})
	require.NoError(t, err, "Admin provisioning should succeed")
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.UID, "Admin user ID should not be empty")

	token, err := client.Token(ctx, leadsdk.TokenRequest{
		Email:    adminEmail,
		Password: adminPassword,
	})
	require.NoError(t, err, "Admin login should succeed")
	assertTokenResponse(t, token)

	return client.WithToken(token.AccessToken), resp.UID
}

// registerUser registers a regular user and returns an authenticated client
// plus the user ID.
func registerUser(t *testing.T, client *leadsdk.Client, email, name, password string) (*leadsdk.Client, string) {
	t.Helper()
	ctx := context.Background()

	reg, err := client.Register(ctx, leadsdk.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     name,
	})
	require.NoError(t, err, "Registration should succeed")
	require.True(t, reg.Success)
	require.NotEmpty(t, reg.UserID)

	token, err := client.Token(ctx, leadsdk.TokenRequest{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err, "Login should succeed")
	assertTokenResponse(t, token)

	return client.WithToken(token.AccessToken), reg.UserID
}

// bookConsultation books a consultation for the authenticated caller.
func bookConsultation(t *testing.T, session *leadsdk.Client, topic string) string {
	t.Helper()

	resp, err := session.CreateConsultation(t.Context(), leadsdk.CreateConsultationRequest{
		Topic: topic,
	})
	require.NoError(t, err, "Booking should succeed")
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.ConsultationID)

	return resp.ConsultationID
}

// assertTokenResponse verifies a token response has all required fields.
func assertTokenResponse(t *testing.T, resp *leadsdk.TokenResponse) {
	t.Helper()
	require.NotNil(t, resp)
	require.NotEmpty(t, resp.AccessToken, "Access token should not be empty")
	require.Equal(t, "Bearer", resp.TokenType, "Token type should be Bearer")
	require.Positive(t, resp.ExpiresIn, "Token lifetime should be positive")
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *leadsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError verifies an error carries the expected error code.
func assertAPIError(t *testing.T, err error, code string, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.True(t, leadsdk.IsCode(err, code),
		"%s - expected error code %q, got: %v", context, code, err)
}

// findNotification returns the first notification of the given type, waiting
// briefly for asynchronous fan-out to land.
func findNotification(t *testing.T, session *leadsdk.Client, notifType string) *leadsdk.Notification {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := session.ListNotifications(t.Context())
		require.NoError(t, err)

		for i := range resp.Notifications {
			if resp.Notifications[i].Type == notifType {
				return &resp.Notifications[i]
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Fatalf("Notification of type %q not found", notifType)
	return nil
}
