package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/service"
	"github.com/consultbase/leadsvc/internal/leads/store"
	"github.com/consultbase/leadsvc/pkg/httpx"
	"github.com/consultbase/leadsvc/pkg/jwtx"
	"github.com/consultbase/leadsvc/pkg/slogx"

	_ "github.com/consultbase/leadsvc/api/leads" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	IdentityService     *service.IdentityService
	UserService         *service.UserService
	LeadService         *service.LeadService
	ConsultationService *service.ConsultationService
	NotifyService       *service.NotifyService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerLeads()
	r.registerConsultations()
	r.registerNotifications()
	r.registerUsers()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ConsultBase Leads Service API
//	@version		0.1.0
//	@description	Lead capture and notification backend. Consultation bookings and shortlist
//	@description	shares create lead records; lead creation fans notifications out to admins.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{IdentityService: r.IdentityService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/token - strict rate limit by IP (authentication attempts)
	tokenHandler := &TokenHandler{IdentityService: r.IdentityService}
	r.Mux.Handle("POST /v1/auth/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerLeads() {
	createHandler := &LeadCreateHandler{LeadService: r.LeadService}
	shareHandler := &ShortlistShareHandler{LeadService: r.LeadService}
	assignHandler := &LeadAssignHandler{LeadService: r.LeadService}

	// POST /leads/create-for-consultation - authenticated write
	r.Mux.Handle("POST /v1/leads/create-for-consultation",
		httpx.Chain(createHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /shortlists/share - authenticated write
	r.Mux.Handle("POST /v1/shortlists/share",
		httpx.Chain(shareHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /leads/assign-consultant - admin operation
	r.Mux.Handle("POST /v1/leads/assign-consultant",
		httpx.Chain(assignHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerConsultations() {
	h := &ConsultationHandler{ConsultationService: r.ConsultationService}

	// POST /consultations - authenticated booking
	r.Mux.Handle("POST /v1/consultations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /consultations/{id}/confirm - admin operation
	r.Mux.Handle("POST /v1/consultations/{id}/confirm",
		httpx.Chain(http.HandlerFunc(h.HandleConfirm),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerNotifications() {
	sendHandler := &NotificationSendHandler{NotifyService: r.NotifyService}
	listHandler := &NotificationsHandler{NotifyService: r.NotifyService}

	// POST /notifications/send - admin push to any user
	r.Mux.Handle("POST /v1/notifications/send",
		httpx.Chain(sendHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /notifications - own notification center
	r.Mux.Handle("GET /v1/notifications",
		httpx.Chain(http.HandlerFunc(listHandler.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /notifications/{id}/read - mark own notification read
	r.Mux.Handle("POST /v1/notifications/{id}/read",
		httpx.Chain(http.HandlerFunc(listHandler.HandleMarkRead),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &PushTokenHandler{UserService: r.UserService}

	// PUT /users/me/push-token - register device token
	r.Mux.Handle("PUT /v1/users/me/push-token",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	// POST /admin/accounts - very strict rate limit by IP (setup endpoint,
	// gated by the setup token rather than a bearer token)
	h := &AdminAccountHandler{IdentityService: r.IdentityService}
	r.Mux.Handle("POST /v1/admin/accounts",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
