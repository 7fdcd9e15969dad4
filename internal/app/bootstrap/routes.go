// internal/app/bootstrap/routes.go
package bootstrap

import (
	"errors"
	"net/http"

	creatorpassesfeature "github.com/dalemusser/adminconsole/internal/app/features/creatorpasses"
	dashboardfeature "github.com/dalemusser/adminconsole/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/adminconsole/internal/app/features/errors"
	healthfeature "github.com/dalemusser/adminconsole/internal/app/features/health"
	homefeature "github.com/dalemusser/adminconsole/internal/app/features/home"
	loginfeature "github.com/dalemusser/adminconsole/internal/app/features/login"
	logoutfeature "github.com/dalemusser/adminconsole/internal/app/features/logout"
	overviewfeature "github.com/dalemusser/adminconsole/internal/app/features/overview"
	paymentsfeature "github.com/dalemusser/adminconsole/internal/app/features/payments"
	transactionsfeature "github.com/dalemusser/adminconsole/internal/app/features/transactions"
	usersfeature "github.com/dalemusser/adminconsole/internal/app/features/users"
	"github.com/dalemusser/adminconsole/internal/app/system/auditlog"
	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the Admin API client, and any
// Startup hooks are ready. It initializes the template engine, applies the
// session and CSRF middleware, and mounts the feature routers: login and
// logout, the dashboard shell with its stats cards, and one router per
// dashboard section.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	csrfMW, err := csrfMiddleware(appCfg, secure, logger)
	if err != nil {
		return nil, err
	}

	audit := auditlog.New(logger, auditlog.Config{Mode: appCfg.AuditLog, TrustProxy: appCfg.TrustProxyHeaders})
	ld := loader.New(sessionMgr, audit, logger)

	r := chi.NewRouter()

	errorsHandler := errorsfeature.NewHandler(logger)
	r.NotFound(errorsHandler.NotFound)

	// Global auth middleware: loads the admin session (bearer token) into the
	// request context when the cookie carries one.
	r.Use(sessionMgr.LoadSession)

	// Health check endpoint for load balancers and orchestrators.
	// Mounted before CSRF so probes never need a token cookie.
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Group(func(r chi.Router) {
		if !secure {
			r.Use(plaintextCSRF)
		}
		r.Use(csrfMW)

		homeHandler := homefeature.NewHandler(logger)
		r.Mount("/", homefeature.Routes(homeHandler))

		// Authentication
		loginHandler := loginfeature.NewHandler(deps.API, sessionMgr, deps.LoginLimiter, audit, logger)
		r.Mount("/login", loginfeature.Routes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, audit, logger)
		r.Mount("/logout", logoutfeature.Routes(logoutHandler))

		// Dashboard shell and stats cards
		dashboardHandler := dashboardfeature.NewHandler(deps.API, ld, logger)
		r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

		// Sections
		usersHandler := usersfeature.NewHandler(deps.API, ld, logger)
		r.Mount("/users", usersfeature.Routes(usersHandler, sessionMgr))
		r.Mount("/users-by-date", usersfeature.ByDateRoutes(usersHandler, sessionMgr))

		transactionsHandler := transactionsfeature.NewHandler(deps.API, ld, logger)
		r.Mount("/transactions", transactionsfeature.Routes(transactionsHandler, sessionMgr))

		paymentsHandler := paymentsfeature.NewHandler(deps.API, ld, logger)
		r.Mount("/payments", paymentsfeature.Routes(paymentsHandler, sessionMgr))

		creatorPassesHandler := creatorpassesfeature.NewHandler(deps.API, ld, logger)
		r.Mount("/creator-passes", creatorpassesfeature.Routes(creatorPassesHandler, sessionMgr))

		overviewHandler := overviewfeature.NewHandler(deps.API, ld, logger)
		r.Mount("/overview", overviewfeature.Routes(overviewHandler, sessionMgr))
	})

	return r, nil
}

var errCSRFKey = errors.New("could not generate a CSRF key")

// csrfMiddleware builds the gorilla/csrf protector. Without a configured key
// a random one is generated, so tokens do not survive a restart.
func csrfMiddleware(appCfg AppConfig, secure bool, logger *zap.Logger) (func(http.Handler) http.Handler, error) {
	key := []byte(appCfg.CSRFKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			logger.Error("CSRF key generation failed")
			return nil, errCSRFKey
		}
		logger.Info("generated ephemeral CSRF key; set csrf_key to keep tokens valid across restarts")
	}

	opts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", r.URL.Path),
				zap.Error(csrf.FailureReason(r)))
			http.Error(w, "Forbidden - invalid or missing CSRF token. Reload the page and try again.", http.StatusForbidden)
		})),
	}
	if appCfg.SessionDomain != "" {
		opts = append(opts, csrf.Domain(appCfg.SessionDomain))
	}
	return csrf.Protect(key, opts...), nil
}

// plaintextCSRF marks requests as plain HTTP so gorilla/csrf skips its
// HTTPS-only referer checks outside production.
func plaintextCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
