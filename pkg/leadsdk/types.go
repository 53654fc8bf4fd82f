package leadsdk

// ErrorResponse is the standard error body returned by every callable.
type ErrorResponse struct {
	// Error is the error kind (e.g., "invalid_argument", "permission_denied")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// TokenRequest is the password grant request for POST /v1/auth/token.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the minted access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "Bearer"
	ExpiresIn   int    `json:"expires_in"` // lifetime in seconds
}

// RegisterRequest creates a new account plus its user document.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}

// CreateLeadRequest is the createLeadForConsultation callable input.
type CreateLeadRequest struct {
	ConsultationID string `json:"consultationId"`
	UserID         string `json:"userId"`
}

type CreateLeadResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"leadId"`

	// AlreadyExists is set when a recent lead for the same user and source
	// was returned instead of creating a new one.
	AlreadyExists bool `json:"alreadyExists,omitempty"`
}

// ShareShortlistRequest is the shareShortlist callable input.
type ShareShortlistRequest struct {
	UserID         string   `json:"userId"`
	OpportunityIDs []string `json:"opportunityIds"`
}

type ShareShortlistResponse struct {
	Success   bool   `json:"success"`
	ShareLink string `json:"shareLink"`
	LeadID    string `json:"leadId"`
}

// AssignConsultantRequest is the assignConsultant callable input.
type AssignConsultantRequest struct {
	LeadID       string `json:"leadId"`
	ConsultantID string `json:"consultantId"`
}

type AssignConsultantResponse struct {
	Success bool `json:"success"`
}

// SendNotificationRequest is the sendNotificationToUser callable input.
type SendNotificationRequest struct {
	UserID string `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`

	// Type defaults to "admin_notification" when empty.
	Type string `json:"type,omitempty"`
}

type SendNotificationResponse struct {
	Success bool `json:"success"`
}

// CreateAdminAccountRequest provisions or repairs an administrator account.
type CreateAdminAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`

	// SetupToken must match the service's configured setup token when one
	// is configured.
	SetupToken string `json:"setupToken,omitempty"`
}

type CreateAdminAccountResponse struct {
	Success bool   `json:"success"`
	UID     string `json:"uid"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// CreateConsultationRequest books a consultation for the caller.
type CreateConsultationRequest struct {
	Topic string `json:"topic,omitempty"`
}

type CreateConsultationResponse struct {
	Success        bool   `json:"success"`
	ConsultationID string `json:"consultationId"`
}

type ConfirmConsultationResponse struct {
	Success bool `json:"success"`
}

// PushTokenRequest registers the caller's push registration token.
type PushTokenRequest struct {
	FCMToken string `json:"fcmToken"`
}

type PushTokenResponse struct {
	Success bool `json:"success"`
}

// Notification is one entry of the caller's notification center.
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Type      string `json:"type"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"` // RFC 3339
}

type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

type MarkReadResponse struct {
	Success bool `json:"success"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
