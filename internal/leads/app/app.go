package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/events"
	httpapi "github.com/consultbase/leadsvc/internal/leads/http"
	"github.com/consultbase/leadsvc/internal/leads/push"
	"github.com/consultbase/leadsvc/internal/leads/service"
	"github.com/consultbase/leadsvc/internal/leads/store"
	"github.com/consultbase/leadsvc/internal/leads/store/drivers/sqlite"
	"github.com/consultbase/leadsvc/pkg/jwtx"
	"github.com/consultbase/leadsvc/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the leads service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer *jwtx.Signer
	bus    *events.Bus
	sender push.Sender

	// Services
	identityService     *service.IdentityService
	userService         *service.UserService
	leadService         *service.LeadService
	consultationService *service.ConsultationService
	notifyService       *service.NotifyService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "leads-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initSigner(); err != nil {
		return nil, err
	}

	if err := app.initPush(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("leads service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down leads service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Let in-flight notification fan-outs finish before the store closes
	app.bus.Wait()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("leads service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initSigner loads the token signing key. Without a configured seed file an
// ephemeral key is generated, which invalidates outstanding tokens on restart.
func (app *Application) initSigner() error {
	if app.cfg.SigningKeySeedFile != "" {
		signer, err := jwtx.LoadSignerFromSeedFile(app.cfg.SigningKeySeedFile, app.cfg.SigningKeyID)
		if err != nil {
			return fmt.Errorf("failed to load signing key: %w", err)
		}
		app.signer = signer
		app.logger.Info("signing key loaded", "kid", app.cfg.SigningKeyID)
		return nil
	}

	signer, err := jwtx.NewEphemeralSigner(app.cfg.SigningKeyID)
	if err != nil {
		return fmt.Errorf("failed to generate signing key: %w", err)
	}
	app.signer = signer
	app.logger.Warn("using ephemeral signing key; tokens will not survive restarts")
	return nil
}

// initPush selects the push transport. FCM when credentials are configured,
// log-only otherwise.
func (app *Application) initPush() error {
	if app.cfg.FCMCredentialsFile == "" {
		app.sender = push.LogSender{}
		app.logger.Warn("no FCM credentials configured; pushes are log-only")
		return nil
	}

	sender, err := push.NewFCMSender(context.Background(), app.cfg.FCMCredentialsFile)
	if err != nil {
		return fmt.Errorf("failed to initialize FCM: %w", err)
	}
	app.sender = sender
	app.logger.Info("FCM push transport initialized")
	return nil
}

// initServices initializes all business logic services and wires the event
// subscriptions that drive notification fan-out.
func (app *Application) initServices() {
	app.bus = events.NewBus()

	app.notifyService = &service.NotifyService{
		Store: app.db,
		Push:  app.sender,
	}

	app.identityService = &service.IdentityService{
		Store:      app.db,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		TokenTTL:   jwtx.DefaultAccessTokenTTL,
		SetupToken: app.cfg.AdminSetupToken,
	}

	app.userService = &service.UserService{Store: app.db}

	app.leadService = &service.LeadService{
		Store:         app.db,
		Bus:           app.bus,
		Notify:        app.notifyService,
		ShareLinkBase: app.cfg.ShareLinkBase,
		DedupWindow:   app.cfg.DedupWindow,
	}

	app.consultationService = &service.ConsultationService{
		Store:  app.db,
		Bus:    app.bus,
		Notify: app.notifyService,
	}

	app.bus.Subscribe(events.TopicConsultationCreated, app.leadService.HandleConsultationCreated)
	app.bus.Subscribe(events.TopicLeadCreated, app.notifyService.HandleLeadCreated)
	app.bus.Subscribe(events.TopicConsultationUpdated, app.notifyService.HandleConsultationUpdated)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer.Verifier(app.cfg.Issuer),
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.IdentityService = app.identityService
	router.UserService = app.userService
	router.LeadService = app.leadService
	router.ConsultationService = app.consultationService
	router.NotifyService = app.notifyService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
