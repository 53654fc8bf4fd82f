package leadsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Client is an HTTP client for the leads service.
type Client struct {
	// BaseURL is the root of the service, e.g. "https://leads.example.com".
	BaseURL string

	// HTTPClient is used for all requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// token is the bearer token attached to authenticated requests.
	token string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// WithToken returns a copy of the client that authenticates with the given
// bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Token exchanges credentials for an access token.
func (c *Client) Token(ctx context.Context, req TokenRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/token", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account and user record.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateLeadForConsultation records a lead for a booked consultation.
func (c *Client) CreateLeadForConsultation(ctx context.Context, req CreateLeadRequest) (*CreateLeadResponse, error) {
	var resp CreateLeadResponse
	if err := c.do(ctx, http.MethodPost, "/v1/leads/create-for-consultation", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ShareShortlist records a shortlist share lead and returns its share link.
func (c *Client) ShareShortlist(ctx context.Context, req ShareShortlistRequest) (*ShareShortlistResponse, error) {
	var resp ShareShortlistResponse
	if err := c.do(ctx, http.MethodPost, "/v1/shortlists/share", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AssignConsultant assigns a consultant to a lead. Admin only.
func (c *Client) AssignConsultant(ctx context.Context, req AssignConsultantRequest) (*AssignConsultantResponse, error) {
	var resp AssignConsultantResponse
	if err := c.do(ctx, http.MethodPost, "/v1/leads/assign-consultant", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendNotification delivers an ad-hoc notification to a user. Admin only.
func (c *Client) SendNotification(ctx context.Context, req SendNotificationRequest) (*SendNotificationResponse, error) {
	var resp SendNotificationResponse
	if err := c.do(ctx, http.MethodPost, "/v1/notifications/send", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateAdminAccount provisions or repairs an administrator account.
func (c *Client) CreateAdminAccount(ctx context.Context, req CreateAdminAccountRequest) (*CreateAdminAccountResponse, error) {
	var resp CreateAdminAccountResponse
	if err := c.do(ctx, http.MethodPost, "/v1/admin/accounts", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateConsultation books a consultation for the authenticated caller.
func (c *Client) CreateConsultation(ctx context.Context, req CreateConsultationRequest) (*CreateConsultationResponse, error) {
	var resp CreateConsultationResponse
	if err := c.do(ctx, http.MethodPost, "/v1/consultations", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConfirmConsultation marks a consultation as confirmed. Admin only.
func (c *Client) ConfirmConsultation(ctx context.Context, consultationID string) (*ConfirmConsultationResponse, error) {
	var resp ConfirmConsultationResponse
	path := fmt.Sprintf("/v1/consultations/%s/confirm", consultationID)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterPushToken stores the caller's push registration token.
func (c *Client) RegisterPushToken(ctx context.Context, req PushTokenRequest) (*PushTokenResponse, error) {
	var resp PushTokenResponse
	if err := c.do(ctx, http.MethodPut, "/v1/users/me/push-token", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListNotifications returns the caller's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context) (*NotificationsResponse, error) {
	var resp NotificationsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/notifications", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MarkNotificationRead marks one of the caller's notifications as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) (*MarkReadResponse, error) {
	var resp MarkReadResponse
	path := fmt.Sprintf("/v1/notifications/%s/read", notificationID)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLiveness checks the service liveness probe.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetReadiness checks the service readiness probe.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// url joins the base URL with a path.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// do sends a JSON request and decodes a JSON response. Non-2xx responses are
// decoded into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
